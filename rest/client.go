package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/solace-dev/solace"
)

// Interface compliance check.
var _ solace.Backend = (*Client)(nil)

// Client implements [solace.Backend] over the wellness service's HTTP API.
// It starts disconnected: every remote operation fails with
// [solace.ErrNotConnected] until Connect succeeds.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	live       atomic.Bool
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for testing and for
// overriding the default request timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new [Client] for the service at baseURL, authenticating with
// the given bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Connect verifies the service is reachable and marks the client live. It
// must succeed before any other remote operation is attempted.
func (c *Client) Connect(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+apiPrefix+"/health", nil)
	if err != nil {
		return fmt.Errorf("rest: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rest: health check: %w: %w", solace.ErrRemoteCall, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return parseHTTPError("health check", resp)
	}
	c.live.Store(true)
	return nil
}

// Ready reports whether Connect has succeeded.
func (c *Client) Ready() bool {
	return c.live.Load()
}

// call performs one JSON round trip. in and out may be nil; a non-nil in is
// sent as the request body, a non-nil out receives the decoded response.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	if !c.live.Load() {
		return solace.ErrNotConnected
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("rest: %s: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("rest: %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rest: %s: %w: %w", path, solace.ErrRemoteCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseHTTPError(path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rest: %s: decode response: %w", path, err)
	}
	return nil
}

func parseHTTPError(op string, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("rest: %s: HTTP %d: %w", op, resp.StatusCode, solace.ErrRemoteCall)
	}
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error == "" {
		return fmt.Errorf("rest: %s: HTTP %d: %s: %w", op, resp.StatusCode, string(body), solace.ErrRemoteCall)
	}
	return fmt.Errorf("rest: %s: %s: %w", op, apiErr.Error, solace.ErrRemoteCall)
}

func (c *Client) CreateChatSession(ctx context.Context) (uint64, error) {
	var out apiSessionCreated
	if err := c.call(ctx, http.MethodPost, "/chat/sessions", nil, &out); err != nil {
		return 0, err
	}
	return out.SessionID, nil
}

func (c *Client) EndChatSession(ctx context.Context, sessionID uint64) error {
	return c.call(ctx, http.MethodDelete, "/chat/sessions/"+strconv.FormatUint(sessionID, 10), nil, nil)
}

func (c *Client) SendChatMessage(ctx context.Context, sessionID uint64, text string) (string, error) {
	var out apiReply
	path := "/chat/sessions/" + strconv.FormatUint(sessionID, 10) + "/messages"
	if err := c.call(ctx, http.MethodPost, path, apiSendMessage{Text: text}, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

func (c *Client) GetChatMessages(ctx context.Context, sessionID uint64) ([]solace.HistoryMessage, error) {
	var out []apiHistoryMessage
	path := "/chat/sessions/" + strconv.FormatUint(sessionID, 10) + "/messages"
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	msgs := make([]solace.HistoryMessage, len(out))
	for i, m := range out {
		msgs[i] = m.domain()
	}
	return msgs, nil
}

func (c *Client) SubmitMoodEntry(ctx context.Context, score int, emotionLabel, journalText string) error {
	if err := solace.ValidateMoodScore(score); err != nil {
		return err
	}
	in := apiMoodEntry{MoodScore: score, EmotionLabel: emotionLabel, JournalText: journalText}
	return c.call(ctx, http.MethodPost, "/mood", in, nil)
}

func (c *Client) GetMoodTrend(ctx context.Context) ([]solace.TrendPoint, error) {
	var out []apiTrendPoint
	if err := c.call(ctx, http.MethodGet, "/mood/trend", nil, &out); err != nil {
		return nil, err
	}
	points := make([]solace.TrendPoint, len(out))
	for i, p := range out {
		points[i] = solace.TrendPoint{At: timeFromNanos(p.At), Score: p.Score}
	}
	return points, nil
}

func (c *Client) GetMoodHistory(ctx context.Context, userID string) ([]solace.MoodEntry, error) {
	var out []apiMoodEntry
	if err := c.call(ctx, http.MethodGet, "/mood/history?user="+userID, nil, &out); err != nil {
		return nil, err
	}
	entries := make([]solace.MoodEntry, len(out))
	for i, e := range out {
		entries[i] = e.domain()
	}
	return entries, nil
}

func (c *Client) GetActiveRiskAlerts(ctx context.Context) ([]solace.RiskAlert, error) {
	var out []apiRiskAlert
	if err := c.call(ctx, http.MethodGet, "/alerts/active", nil, &out); err != nil {
		return nil, err
	}
	alerts := make([]solace.RiskAlert, len(out))
	for i, a := range out {
		alerts[i] = a.domain()
	}
	return alerts, nil
}

func (c *Client) ResolveRiskAlert(ctx context.Context, userID string, alertIndex int) error {
	in := apiResolveAlert{UserID: userID, AlertIndex: alertIndex}
	return c.call(ctx, http.MethodPost, "/alerts/resolve", in, nil)
}

func (c *Client) ListCopingTools(ctx context.Context) ([]solace.CopingTool, error) {
	var out []apiCopingTool
	if err := c.call(ctx, http.MethodGet, "/tools", nil, &out); err != nil {
		return nil, err
	}
	tools := make([]solace.CopingTool, len(out))
	for i, t := range out {
		tools[i] = t.domain()
	}
	return tools, nil
}

func (c *Client) CreateCopingTool(ctx context.Context, tool solace.CopingTool) (uint64, error) {
	if err := solace.ValidateCopingTool(tool); err != nil {
		return 0, err
	}
	var out apiToolCreated
	if err := c.call(ctx, http.MethodPost, "/tools", wireTool(tool), &out); err != nil {
		return 0, err
	}
	return out.ToolID, nil
}

func (c *Client) UpdateCopingTool(ctx context.Context, toolID uint64, tool solace.CopingTool) error {
	if err := solace.ValidateCopingTool(tool); err != nil {
		return err
	}
	return c.call(ctx, http.MethodPut, "/tools/"+strconv.FormatUint(toolID, 10), wireTool(tool), nil)
}

func (c *Client) DeleteCopingTool(ctx context.Context, toolID uint64) error {
	return c.call(ctx, http.MethodDelete, "/tools/"+strconv.FormatUint(toolID, 10), nil, nil)
}

func (c *Client) GetUserProfile(ctx context.Context) (*solace.UserProfile, error) {
	var out apiUserProfile
	if err := c.call(ctx, http.MethodGet, "/profile", nil, &out); err != nil {
		return nil, err
	}
	profile := out.domain()
	return &profile, nil
}

func (c *Client) SaveUserProfile(ctx context.Context, profile solace.UserProfile) error {
	return c.call(ctx, http.MethodPut, "/profile", wireProfile(profile), nil)
}

func (c *Client) RegisterUser(ctx context.Context, email string, consentGiven bool) error {
	if err := solace.ValidateRegistration(email, consentGiven); err != nil {
		return err
	}
	return c.call(ctx, http.MethodPost, "/users", apiRegisterUser{Email: email, ConsentGiven: consentGiven}, nil)
}

func (c *Client) GetAdminAnalytics(ctx context.Context) (*solace.AdminAnalytics, error) {
	var out apiAdminAnalytics
	if err := c.call(ctx, http.MethodGet, "/admin/analytics", nil, &out); err != nil {
		return nil, err
	}
	return out.domain(), nil
}

func (c *Client) GetAdminLogs(ctx context.Context) ([]solace.AdminLog, error) {
	var out []apiAdminLog
	if err := c.call(ctx, http.MethodGet, "/admin/logs", nil, &out); err != nil {
		return nil, err
	}
	logs := make([]solace.AdminLog, len(out))
	for i, l := range out {
		logs[i] = solace.AdminLog{AdminID: l.AdminID, Action: l.Action, At: timeFromNanos(l.At)}
	}
	return logs, nil
}

func (c *Client) GetAnonymizedSessions(ctx context.Context) ([]string, error) {
	var out apiAnonymizedSessions
	if err := c.call(ctx, http.MethodGet, "/admin/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

func (c *Client) GetAllUsers(ctx context.Context) ([]solace.UserProfile, error) {
	var out []apiUserProfile
	if err := c.call(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	users := make([]solace.UserProfile, len(out))
	for i, u := range out {
		users[i] = u.domain()
	}
	return users, nil
}
