package leanix

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"surveygate-service/internal/app/config"
	"surveygate-service/internal/pkg/constvars"
	"surveygate-service/internal/pkg/exceptions"
	"surveygate-service/internal/pkg/survey"
	"surveygate-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// NewHTTPClient builds the shared outbound client with the pool limits the
// service runs with. Every PollClient created by the factory reuses it.
func NewHTTPClient(internalConfig *config.InternalConfig) *http.Client {
	return &http.Client{
		Timeout: time.Duration(internalConfig.LeanIX.RequestTimeoutInSeconds) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        internalConfig.LeanIX.MaxIdleConns,
			MaxIdleConnsPerHost: internalConfig.LeanIX.MaxIdleConnsPerHost,
		},
	}
}

type pollClientFactory struct {
	httpClient *http.Client
}

func NewPollClientFactory(httpClient *http.Client) ClientFactory {
	return &pollClientFactory{httpClient: httpClient}
}

func (f *pollClientFactory) NewClient(cfg Config) PollClient {
	return &pollClient{
		cfg:        cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: f.httpClient,
	}
}

type pollClient struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// getAccessToken exchanges the API token for an OAuth access token. The
// token is cached until 60 seconds before expiry.
func (c *pollClient) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.baseURL+constvars.LeanIXOAuthTokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth("apitoken", c.cfg.APIToken)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrLeanIXTokenExchange(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return "", exceptions.ErrLeanIXTokenExchange(fmt.Errorf("token endpoint returned status %d", resp.StatusCode))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", exceptions.ErrLeanIXTokenExchange(err)
	}
	if token.AccessToken == "" {
		return "", exceptions.ErrLeanIXTokenExchange(fmt.Errorf("token endpoint returned no access token"))
	}

	expiresIn := token.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 3600
	}
	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(expiresIn-60) * time.Second)
	return c.accessToken, nil
}

func (c *pollClient) authorize(ctx context.Context, req *http.Request) error {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return err
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+accessToken)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	return nil
}

func (c *pollClient) pollsURL(suffix string) string {
	query := url.Values{}
	query.Set("workspaceId", c.cfg.WorkspaceID.String())
	return c.baseURL + constvars.LeanIXPollsPath + suffix + "?" + query.Encode()
}

func (c *pollClient) CreatePoll(ctx context.Context, poll *survey.PollCreate) (*PollResponse, error) {
	payload, err := poll.WirePayload()
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.pollsURL(""), bytes.NewReader(payload))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrLeanIXUnreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}

	if resp.StatusCode >= 400 {
		return nil, exceptions.ErrLeanIXAPIError(resp.StatusCode, string(body))
	}

	pollResponse := new(PollResponse)
	if err := json.Unmarshal(body, pollResponse); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}
	return pollResponse, nil
}

func (c *pollClient) GetPoll(ctx context.Context, pollID uuid.UUID) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.pollsURL("/"+pollID.String()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrLeanIXUnreachable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}

	if resp.StatusCode >= 400 {
		return nil, exceptions.ErrPollNotFound(resp.StatusCode, string(body))
	}

	data, err := utils.ParseJSONBody(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}
	return data, nil
}
