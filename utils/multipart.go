package utils

import (
	"mime/multipart"

	"sevasetu/gateway"
)

// OpenUploads turns uploaded file headers into gateway uploads. The returned
// closer must be called after the outbound request finishes; the readers are
// streamed, not buffered.
func OpenUploads(headers []*multipart.FileHeader) ([]gateway.Upload, func(), error) {
	uploads := make([]gateway.Upload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		opened = append(opened, file)
		uploads = append(uploads, gateway.Upload{
			FileName: header.Filename,
			Reader:   file,
		})
	}

	return uploads, closeAll, nil
}
