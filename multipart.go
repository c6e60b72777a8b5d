package microhttp

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
)

// MultipartBody is a pre-built multipart/form-data payload. Pass it as the
// Body of a Request to bypass content-type branching; the boundary content
// type it produces replaces any declared Content-Type header. The form
// encoder builds one from a flat string map for the multipart/form-data
// content-type branch.
type MultipartBody struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload parts.
	Files []FileField
}

// FileField is one file part of a multipart payload.
type FileField struct {
	// FieldName is the form field name (e.g. "file").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the part's MIME type. Empty uses application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for streamed content.
	Reader io.Reader
}

// encode writes the simple fields followed by the file parts and returns
// the payload together with the writer's boundary content type.
func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range m.Fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.Files {
		if err := f.write(w); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// write emits one file part. Every part carries an explicit Content-Type.
func (f FileField) write(w *multipart.Writer) error {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     f.FieldName,
		"filename": f.FileName,
	}))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f.content())
	return err
}

// content picks the part source, preferring Data over Reader.
func (f FileField) content() io.Reader {
	if f.Data != nil {
		return bytes.NewReader(f.Data)
	}
	if f.Reader != nil {
		return f.Reader
	}
	return bytes.NewReader(nil)
}
