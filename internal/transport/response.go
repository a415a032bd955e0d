package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/gazetteer/pkg/errors"
)

// DecodeJSON checks the response status and decodes its JSON body into
// target. The body is always closed.
func DecodeJSON(source string, resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(source, resp.StatusCode, resp.Request.URL.String())
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", resp.Request.URL.String(), err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", resp.Request.URL.String(), err)
	}
	return nil
}
