package adapters

import (
	"fmt"
	"generate-persona-audio/application/ports/outbound"
	"io"
	"net/http"
)

// ContentFetcher executes an HTTP request and hands back the response
// body as a stream after checking the status code. The caller closes
// the stream.
type ContentFetcher interface {
	FetchStream(req *http.Request) (io.ReadCloser, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

func (c *contentFetcher) FetchStream(req *http.Request) (io.ReadCloser, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		bodyPayload, readErr := io.ReadAll(res.Body)
		if closeErr := res.Body.Close(); closeErr != nil {
			c.logger.Error(closeErr, "Failed to close the response body")
		}
		c.logger.ErrorWithFields(readErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(bodyPayload),
		})
		return nil, fmt.Errorf("HTTP request returned non-OK status code: %d", res.StatusCode)
	}

	return res.Body, nil
}
