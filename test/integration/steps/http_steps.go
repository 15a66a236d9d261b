package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

// registerAuthSteps registers authentication steps.
func registerAuthSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerDataSteps registers data setup and inspection steps.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have a transaction "([^"]*)" of ([-\d.]+) in category "([^"]*)" on "([^"]*)"$`, iHaveATransaction)
	ctx.Step(`^I have set a monthly budget of ([\d.]+) and a savings goal of ([\d.]+)$`, iHaveSetABudget)
	ctx.Step(`^an alert email should be queued for "([^"]*)"$`, anAlertEmailShouldBeQueuedFor)
	ctx.Step(`^no alert email should be queued for "([^"]*)"$`, noAlertEmailShouldBeQueuedFor)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	endpoint = strings.ReplaceAll(endpoint, "{transaction_id}", tc.lastTransactionID)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.captureTransactionID()
	return nil
}

// captureTransactionID remembers the id of the latest transaction payload so
// follow-up steps can reference it in URLs.
func (tc *TestContext) captureTransactionID() {
	var payload map[string]any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return
	}
	if _, hasAmount := payload["amount"]; !hasAmount {
		return
	}
	if id, ok := payload["id"].(string); ok {
		tc.lastTransactionID = id
	}
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, []byte(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmRegisteredAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"email": %q, "name": "Test User", "password": %q}`, email, password)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}
	tc.accessToken = payload.AccessToken
	tc.refreshToken = payload.RefreshToken

	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}

func iHaveATransaction(ctx context.Context, title string, amount float64, category, date string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"title": %q, "amount": %g, "category": %q, "date": %q}`, title, amount, category, date)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("transaction setup failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return SetTestContext(ctx, tc), nil
}

func iHaveSetABudget(ctx context.Context, monthlyBudget, savingsGoal float64) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"monthly_budget": %g, "savings_goal": %g}`, monthlyBudget, savingsGoal)
	if err := tc.doRequest(http.MethodPut, "/api/v1/budget", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("budget setup failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return SetTestContext(ctx, tc), nil
}

func anAlertEmailShouldBeQueuedFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	jobs, err := tc.emailQueue.GetByRecipient(context.Background(), email)
	if err != nil {
		return fmt.Errorf("failed to query email queue: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no email jobs queued for %s", email)
	}
	return nil
}

func noAlertEmailShouldBeQueuedFor(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	jobs, err := tc.emailQueue.GetByRecipient(context.Background(), email)
	if err != nil {
		return fmt.Errorf("failed to query email queue: %w", err)
	}
	if len(jobs) != 0 {
		return fmt.Errorf("expected no email jobs for %s, found %d", email, len(jobs))
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupJSONField(tc.responseBody, path)
	if err != nil {
		return err
	}

	actual := stringifyJSONValue(value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q. Body: %s", path, expected, actual, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := lookupJSONField(tc.responseBody, path)
	return err
}

// lookupJSONField resolves a dot-separated path in the response body.
// Numeric segments index into arrays, e.g. "days.14.spent".
func lookupJSONField(body []byte, path string) (any, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := payload
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in path %q", segment, path)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("segment %q is not an array index in path %q", segment, path)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index %d out of range in path %q", index, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %T at segment %q of path %q", current, segment, path)
		}
	}
	return current, nil
}

func stringifyJSONValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return "null"
	default:
		raw, _ := json.Marshal(v)
		return string(raw)
	}
}
