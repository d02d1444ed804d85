package adapter

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/lilducky98/monodevelop-tfs-addin/internal/config"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/logger"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/utils"
	"github.com/lilducky98/monodevelop-tfs-addin/internal/wire"
)

const (
	repositoryPath = "/VersionControl/v1.0/repository.asmx"
	itemPath       = "/VersionControl/v1.0/item.asmx"

	soapNamespace          = "http://schemas.xmlsoap.org/soap/envelope/"
	clientServicesNS       = "http://schemas.microsoft.com/TeamFoundation/2005/06/VersionControl/ClientServices/03"
	queryItemsByIDAction   = clientServicesNS + "/QueryItemsById"
	itemElement            = "Item"
	maxErrorBodyBytes      = 64 << 10
	downloadFilePermission = 0o644
)

type soapEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	Soap    string   `xml:"xmlns:soap,attr"`
	Body    soapBody `xml:"soap:Body"`
}

type soapBody struct {
	QueryItemsByID *queryItemsByID `xml:"QueryItemsById,omitempty"`
}

type queryItemsByID struct {
	Xmlns                string `xml:"xmlns,attr"`
	ItemIDs              []int  `xml:"itemIds>int"`
	ChangeSet            int    `xml:"changeSet"`
	GenerateDownloadURLs bool   `xml:"generateDownloadUrls"`
}

type httpRepositoryClient struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPRepositoryClient constructs an HTTP/SOAP implementation of
// [RepositoryClient]. It validates the collection URL from cfg.URL and
// configures the underlying HTTP client with the request timeout and retry
// count. Transient gateway failures (429, 502, 503, 504) are retried.
//
// Returns an error if cfg.URL is empty or is not an absolute URL.
func NewHTTPRepositoryClient(cfg config.Repository, logger *logger.Logger) (RepositoryClient, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid repository url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.RetryCount)
	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}
		switch r.StatusCode() {
		case http.StatusTooManyRequests, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	})

	return &httpRepositoryClient{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ItemURL implements [RepositoryClient].
func (h *httpRepositoryClient) ItemURL() string {
	return h.baseURL + itemPath
}

// FetchItem implements [RepositoryClient]. It POSTs a QueryItemsById SOAP
// envelope to the repository service and returns the first <Item> element of
// the response.
func (h *httpRepositoryClient) FetchItem(ctx context.Context, itemID, changesetID int, includeDownloadInfo bool) (*wire.Element, error) {
	envelope := soapEnvelope{
		Soap: soapNamespace,
		Body: soapBody{QueryItemsByID: &queryItemsByID{
			Xmlns:                clientServicesNS,
			ItemIDs:              []int{itemID},
			ChangeSet:            changesetID,
			GenerateDownloadURLs: includeDownloadInfo,
		}},
	}

	payload, err := xml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("query item marshal envelope: %w", err)
	}

	requestID := utils.NewRequestID()
	h.logger.Debug().
		Str("request_id", requestID).
		Int("item_id", itemID).
		Int("changeset", changesetID).
		Msg("querying item by id")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/xml; charset=utf-8").
		SetHeader("SOAPAction", `"`+queryItemsByIDAction+`"`).
		SetHeader(utils.RequestIDHeader, requestID).
		SetBody(append([]byte(xml.Header), payload...)).
		Post(repositoryPath)
	if err != nil {
		return nil, fmt.Errorf("query item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	items, err := wire.ReadElementsFromBytes(resp.Body(), itemElement)
	if err != nil {
		return nil, fmt.Errorf("query item decode response: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: item %d at changeset %d", ErrItemNotFound, itemID, changesetID)
	}

	return items[0], nil
}

// DownloadFile implements [RepositoryClient]. The body is streamed straight
// into localPath; the file is only created once the server has answered with
// a 2xx status and is removed again if the body cannot be copied in full.
func (h *httpRepositoryClient) DownloadFile(ctx context.Context, location *url.URL, localPath string) error {
	if location == nil {
		return ErrNilLocation
	}

	requestID := utils.NewRequestID()
	h.logger.Debug().
		Str("request_id", requestID).
		Str("path", localPath).
		Msg("downloading artifact")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, requestID).
		SetDoNotParseResponse(true).
		Get(location.String())
	if err != nil {
		return fmt.Errorf("download request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
		return mapStatus(resp.StatusCode(), raw)
	}

	if err = os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("download create directory: %w", err)
	}

	f, err := os.OpenFile(localPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, downloadFilePermission)
	if err != nil {
		return fmt.Errorf("download create file: %w", err)
	}

	_, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		// a truncated artifact must not look like a finished download
		_ = os.Remove(localPath)
		return fmt.Errorf("download write file: %w", err)
	}

	return nil
}
