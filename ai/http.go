package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody limits how much of an error response ends up in the error.
const maxErrorBody = 512

func postJSON(
	ctx context.Context,
	client *http.Client,
	url string,
	header http.Header,
	in, out any,
) error {
	body, err := json.Marshal(in)
	if err != nil {
		return ErrRequestFailed.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ErrRequestFailed.Wrap(err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return ErrRequestFailed.Wrap(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrRequestFailed.Wrap(err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}

		return ErrRequestFailed.Wrap(
			fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody)),
		)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return ErrMalformedResponse.Wrap(err)
	}

	return nil
}
