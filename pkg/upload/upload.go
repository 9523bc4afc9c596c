package upload

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

var ErrEmptyFileName = errors.New("uploaded file has no name")

// ItfUploader stores a blog image and returns the name recorded on the blog.
type ItfUploader interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// FileName is the storage key of an upload: the client supplied name without
// any directory part. Two uploads with the same name share one key.
func FileName(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrEmptyFileName
	}
	name := filepath.Base(filepath.Clean("/" + file.Filename))
	if name == "/" || name == "." {
		return "", ErrEmptyFileName
	}
	return name, nil
}

type disk struct {
	dir string
	log *logrus.Logger
}

func NewDisk(dir string, log *logrus.Logger) (ItfUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &disk{dir: dir, log: log}, nil
}

func (d *disk) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name, err := FileName(file)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(d.dir, name)
	if err := fasthttp.SaveMultipartFile(file, target); err != nil {
		d.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"path":  target,
		}).Error("Failed to write uploaded image")
		return "", err
	}

	d.log.WithFields(logrus.Fields{
		"path": target,
		"size": file.Size,
	}).Debug("Image stored on disk")

	return name, nil
}
