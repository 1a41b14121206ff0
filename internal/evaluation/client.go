package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the evaluator service over HTTP. The call is synchronous with
// a fixed timeout; there are no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client against the evaluator base URL. A
// non-positive timeout falls back to 20 seconds.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("EVALUATOR_URL is required")
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// InterviewEvaluation is the evaluator's response to an interview evaluation.
type InterviewEvaluation struct {
	InterviewID int64          `json:"interview_id"`
	TotalScore  float64        `json:"total_score"`
	Verdict     string         `json:"verdict"`
	Details     []AnswerDetail `json:"details"`
}

// EvaluateInterview triggers evaluation of the interview and returns the
// outcome. Any non-2xx response or transport failure is returned as an error.
func (c *Client) EvaluateInterview(ctx context.Context, interviewID int64) (InterviewEvaluation, error) {
	url := fmt.Sprintf("%s/evaluate/interview/%d", c.baseURL, interviewID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return InterviewEvaluation{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return InterviewEvaluation{}, fmt.Errorf("call evaluator: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return InterviewEvaluation{}, fmt.Errorf("read evaluator response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return InterviewEvaluation{}, fmt.Errorf("evaluator status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out InterviewEvaluation
	if err := json.Unmarshal(body, &out); err != nil {
		return InterviewEvaluation{}, fmt.Errorf("decode evaluator response: %w", err)
	}
	return out, nil
}
