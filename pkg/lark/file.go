package lark

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/fivetwenty-io/lark-client/internal/constants"
)

// File is the result of a binary download. Its body can be consumed exactly once,
// either by WriteFile or by Reader; any further attempt returns ErrStreamConsumed.
type File struct {
	Headers http.Header

	body     io.ReadCloser
	consumed atomic.Bool
}

// NewFile wraps a response body.
func NewFile(body io.ReadCloser, headers http.Header) *File {
	if headers == nil {
		headers = make(http.Header)
	}

	return &File{Headers: headers, body: body}
}

// FileName returns the file name announced in Content-Disposition, or "".
func (f *File) FileName() string {
	disposition := f.Headers.Get(constants.HeaderDisposition)
	if disposition == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}

	return params["filename"]
}

// Reader hands over the body. The caller must close it.
func (f *File) Reader() (io.ReadCloser, error) {
	if !f.consumed.CompareAndSwap(false, true) {
		return nil, ErrStreamConsumed
	}

	return f.body, nil
}

// WriteFile writes the body to path, creating or truncating the file.
func (f *File) WriteFile(path string) error {
	reader, err := f.Reader()
	if err != nil {
		return err
	}

	defer func() {
		_ = reader.Close()
	}()

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DownloadFilePerm) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	_, err = io.Copy(out, reader)
	if err != nil {
		_ = out.Close()

		return fmt.Errorf("writing %s: %w", path, err)
	}

	err = out.Close()
	if err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

// FormFile is one file part of a multipart upload.
type FormFile struct {
	FileName string
	Reader   io.Reader
}

// FormData is a multipart/form-data request body. Use it as Payload.Data.
type FormData struct {
	Fields map[string]string
	Files  map[string]FormFile
}
