package dashsdk

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// SubscribeEvents opens the server-sent event stream and returns a channel
// of decoded events plus a cancel function. The channel closes when the
// stream ends or cancel is called. Malformed frames are skipped.
func (c *SDKClient) SubscribeEvents(ctx context.Context) (<-chan Event, func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/v1/events"), nil)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	if c.Token == nil {
		cancel()
		return nil, nil, fmt.Errorf("no token source configured for authenticated request")
	}
	token, err := c.Token(ctx)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to obtain token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	// The configured client has a request timeout that would sever a
	// long-lived stream; reuse only its transport.
	streamClient := &http.Client{Transport: c.HTTPClient.Transport}

	resp, err := streamClient.Do(req)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to open event stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		cancel()
		return nil, nil, &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("event stream returned HTTP %d", resp.StatusCode),
		}
	}

	ch := make(chan Event)
	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}

			var ev Event
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
				continue
			}

			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, cancel, nil
}
