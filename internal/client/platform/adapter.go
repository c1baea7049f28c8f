// Package platform is the HTTP client for the plan-platform API. Every
// request carries a bearer credential obtained from the injected
// TokenSource at call time; nothing is read from ambient state.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

// DefaultTimeout bounds every request; a hung call must not leave the
// operator stuck in a busy state.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer credential attached to each request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type staticTokenSource struct {
	token string
}

func (s staticTokenSource) Token(_ context.Context) (string, error) {
	return s.token, nil
}

// NewStaticTokenSource wraps a fixed credential, e.g. one read from the
// environment by the console CLI.
func NewStaticTokenSource(token string) TokenSource {
	return staticTokenSource{token: token}
}

type Adapter struct {
	httpClient *http.Client
	baseURL    *url.URL
	creds      TokenSource
}

func NewAdapter(httpClient *http.Client, baseURL string, creds TokenSource) (*Adapter, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &Adapter{
		httpClient: httpClient,
		baseURL:    u,
		creds:      creds,
	}, nil
}

func (a *Adapter) ListTransactions(ctx context.Context) ([]dto.TransactionRecord, error) {
	var envelope struct {
		Data []dto.TransactionRecord `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/transactions/all", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (a *Adapter) UpdateTransactionStatus(ctx context.Context, req dto.UpdateTransactionStatusRequest) error {
	return a.do(ctx, http.MethodPatch, "/transactions", req, nil)
}

func (a *Adapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var envelope struct {
		Data []models.User `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/users", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (a *Adapter) ListDenominations(ctx context.Context) ([]dto.DenominationRecord, error) {
	var envelope struct {
		Data []dto.DenominationRecord `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/wallet/denominations", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (a *Adapter) UpdateDenomination(ctx context.Context, req dto.UpdateDenominationRequest) error {
	return a.do(ctx, http.MethodPatch, "/wallet/denominations", req, nil)
}

func (a *Adapter) GetUpi(ctx context.Context) (string, error) {
	var envelope struct {
		Data dto.UpiResponse `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/wallet/upi", nil, &envelope); err != nil {
		return "", err
	}
	return envelope.Data.UpiID, nil
}

func (a *Adapter) SetUpi(ctx context.Context, upiID string) error {
	return a.do(ctx, http.MethodPost, "/wallet/upi", dto.SetUpiRequest{UpiID: upiID}, nil)
}

func (a *Adapter) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var envelope struct {
		Data dto.PlanList `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/plans", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Plans, nil
}

// CreatePlan sends the multipart create form. logo may be nil.
func (a *Adapter) CreatePlan(ctx context.Context, req dto.CreatePlanRequest, logo io.Reader, logoFilename string) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":             req.Name,
		"description":      req.Description,
		"price":            strconv.FormatFloat(req.Price, 'f', -1, 64),
		"duration":         strconv.Itoa(req.Duration),
		"type":             string(req.Type),
		"returnPercentage": strconv.FormatFloat(req.ReturnPercentage, 'f', -1, 64),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return errs.NewFetchError("failed to encode plan form", err)
		}
	}
	if logo != nil {
		part, err := mw.CreateFormFile("logo", logoFilename)
		if err != nil {
			return errs.NewFetchError("failed to encode logo upload", err)
		}
		if _, err := io.Copy(part, logo); err != nil {
			return errs.NewFetchError("failed to encode logo upload", err)
		}
	}
	if err := mw.Close(); err != nil {
		return errs.NewFetchError("failed to encode plan form", err)
	}

	httpReq, err := a.newRequest(ctx, http.MethodPost, "/plans", &body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	return a.send(httpReq, nil)
}

func (a *Adapter) DeletePlan(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/plans/"+url.PathEscape(id), nil, nil)
}

// --- request plumbing ---

func (a *Adapter) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.NewFetchError("failed to encode request body", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := a.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.send(req, out)
}

func (a *Adapter) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return nil, errs.NewFetchError("failed to build request", err)
	}

	if a.creds != nil {
		token, err := a.creds.Token(ctx)
		if err != nil {
			return nil, errs.NewFetchError("failed to obtain credential", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (a *Adapter) send(req *http.Request, out any) error {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errs.NewFetchError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.NewFetchError("failed to decode response body", err)
		}
	}
	return nil
}

// decodeError maps the server's error envelope back onto the shared
// taxonomy so callers can branch on type rather than status code.
func decodeError(resp *http.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Message == "" {
		body.Message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errs.NewValidationError(body.Message)
	case http.StatusNotFound:
		return errs.NewNotFoundError(body.Message)
	case http.StatusConflict:
		return errs.NewRejectedTransitionError(body.Message)
	default:
		return errs.NewFetchError(fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, body.Message), nil)
	}
}
