package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
)

func registerSteps(ctx *godog.ScenarioContext) {
	// Setup steps
	ctx.Given(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Given(`^a category "([^"]*)" exists$`, aCategoryExists)
	ctx.Given(`^an expense of "([^"]*)" in category "([^"]*)" from (\d+) days? ago$`, anExpenseExists)
	ctx.Given(`^the receipt scanner will read:$`, theReceiptScannerWillRead)
	ctx.Given(`^the receipt scanner is not configured$`, theReceiptScannerIsNotConfigured)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.When(`^I upload a receipt named "([^"]*)" to "([^"]*)"$`, iUploadAReceiptTo)
	ctx.When(`^I delete the category named "([^"]*)"$`, iDeleteTheCategoryNamed)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^every expense should belong to "([^"]*)"$`, everyExpenseShouldBelongTo)
}

func theAPIServerIsRunning() error {
	if test.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func aCategoryExists(name string) error {
	_, err := test.createCategory.Execute(context.Background(), category.CreateCategoryInput{
		Name: name,
	})
	return err
}

func anExpenseExists(amount, categoryName string, daysAgo int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	cat, err := test.categoryRepo.FindByName(context.Background(), categoryName)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("category %q does not exist", categoryName)
	}

	_, err = test.createExpense.Execute(context.Background(), expense.CreateExpenseInput{
		Amount:      value,
		Description: fmt.Sprintf("%s expense", categoryName),
		Date:        time.Now().AddDate(0, 0, -daysAgo),
		CategoryID:  &cat.ID,
	})
	return err
}

func theReceiptScannerWillRead(text *godog.DocString) error {
	test.recognizer.Text = text.Content
	return nil
}

func theReceiptScannerIsNotConfigured() error {
	test.recognizer.Available = false
	return nil
}

func iSendARequestTo(method, path string) error {
	return doRequest(method, path, nil, "")
}

func iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return doRequest(method, path, strings.NewReader(body.Content), "application/json")
}

func iUploadAReceiptTo(filename, path string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename),
	}
	contentType := "image/jpeg"
	if strings.HasSuffix(filename, ".png") {
		contentType = "image/png"
	} else if strings.HasSuffix(filename, ".pdf") {
		contentType = "application/pdf"
	}
	header["Content-Type"] = []string{contentType}

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte("fake-image-bytes")); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return doRequest(http.MethodPost, path, &buf, writer.FormDataContentType())
}

func iDeleteTheCategoryNamed(name string) error {
	cat, err := test.categoryRepo.FindByName(context.Background(), name)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("category %q does not exist", name)
	}
	return doRequest(http.MethodDelete, "/api/v1/categories/"+cat.ID.String(), nil, "")
}

func doRequest(method, path string, body io.Reader, contentType string) error {
	req, err := http.NewRequest(method, test.server.URL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	test.responseStatus = resp.StatusCode
	test.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func theResponseStatusShouldBe(expected int) error {
	if test.responseStatus != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, test.responseStatus, test.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON() error {
	var decoded any
	if err := json.Unmarshal(test.responseBody, &decoded); err != nil {
		return fmt.Errorf("response is not valid JSON: %w (body: %s)", err, test.responseBody)
	}
	return nil
}

func theResponseShouldContain(expected string) error {
	if !strings.Contains(string(test.responseBody), expected) {
		return fmt.Errorf("expected response to contain %q, got %s", expected, test.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(path, expected string) error {
	value, err := lookupField(path)
	if err != nil {
		return err
	}
	actual := fmt.Sprint(value)
	if num, ok := value.(float64); ok {
		actual = strconv.FormatFloat(num, 'f', -1, 64)
	}
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(path string) error {
	_, err := lookupField(path)
	return err
}

func theResponseListShouldHaveItems(path string, count int) error {
	value, err := lookupField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list: %T", path, value)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

func everyExpenseShouldBelongTo(categoryName string) error {
	expenses, err := test.expenseRepo.FindAllWithCategory(context.Background())
	if err != nil {
		return err
	}
	for _, e := range expenses {
		if e.CategoryName != categoryName {
			return fmt.Errorf("expense %s belongs to %q, expected %q", e.Expense.ID, e.CategoryName, categoryName)
		}
	}
	return nil
}

// lookupField navigates a dotted path through the decoded JSON response.
// Numeric segments index into arrays.
func lookupField(path string) (any, error) {
	var decoded any
	if err := json.Unmarshal(test.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w (body: %s)", err, test.responseBody)
	}

	current := decoded
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", path, test.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot navigate %q through %T", path, current)
		}
	}
	return current, nil
}
