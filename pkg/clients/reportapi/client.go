package reportapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/cluckaudit/chicken-math-api/internal/domain/models"
)

// Client is a resty-backed client for the report generation API.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a client for the service instance at baseURL.
func NewClient(baseURL string) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &Client{httpClient: restyClient}
}

type generateBase64Response struct {
	Success   bool   `json:"success"`
	PDFBase64 string `json:"pdf_base64"`
	Filename  string `json:"filename"`
}

// apiError mirrors the service's error payloads.
type apiError struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Missing []string `json:"missing"`
}

// GenerateReport renders a report through the base64 endpoint and returns the
// decoded document bytes along with the suggested filename.
func (c *Client) GenerateReport(ctx context.Context, req models.ReportRequest) ([]byte, string, error) {
	result := new(generateBase64Response)
	errPayload := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(errPayload).
		Post("/generate-pdf-base64")
	if err != nil {
		return nil, "", fmt.Errorf("call report api: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		if len(errPayload.Missing) > 0 {
			return nil, "", fmt.Errorf("report api error: %s: %s",
				errPayload.Error, strings.Join(errPayload.Missing, ", "))
		}
		return nil, "", fmt.Errorf("report api error: status=%d, message=%s",
			resp.StatusCode(), errPayload.Message)
	}

	raw, err := base64.StdEncoding.DecodeString(result.PDFBase64)
	if err != nil {
		return nil, "", fmt.Errorf("decode report payload: %w", err)
	}

	return raw, result.Filename, nil
}
