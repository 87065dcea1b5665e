// Package media загружает изображения (скриншоты пополнений, аватары) на
// ImageKit-совместимый медиахост и возвращает стабильный URL.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

const (
	defaultUploadURL     = "https://upload.imagekit.io/api/v1/files/upload"
	defaultClientTimeout = 15 * time.Second
	maxFileSize          = 10 << 20 // 10MB
)

var (
	ErrFileTooLarge    = errors.New("media: file too large")
	ErrUnsupportedType = errors.New("media: unsupported file type")
)

// File содержимое загружаемого файла вместе с оригинальным именем.
type File struct {
	Name string
	Data []byte
}

//go:generate mockgen -source=imagekit.go -destination=mocks/mocks.go -package=mocks

// Uploader граница медиахоста. Реализация по умолчанию - ImageKitClient.
type Uploader interface {
	Upload(ctx context.Context, file File, folder string) (string, error)
}

type ImageKitClient struct {
	privateKey  string
	urlEndpoint string
	uploadURL   string
	httpClient  *http.Client
	entropy     io.Reader
}

func NewImageKitClient(privateKey, urlEndpoint string) *ImageKitClient {
	return &ImageKitClient{
		privateKey:  privateKey,
		urlEndpoint: strings.TrimSuffix(urlEndpoint, "/"),
		uploadURL:   defaultUploadURL,
		httpClient:  &http.Client{Timeout: defaultClientTimeout},
		// Генератор один на клиент и дергается из конкурентных хендлеров,
		// поэтому монотонный ридер обернут в мьютекс.
		entropy: &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0), //nolint:gosec
		},
	}
}

// Upload загружает файл в указанную папку медиахоста и возвращает URL.
// Без приватного ключа работает в режиме заглушки: URL формируется локально,
// сетевой запрос не выполняется.
func (c *ImageKitClient) Upload(ctx context.Context, file File, folder string) (string, error) {
	if len(file.Data) == 0 {
		return "", errors.New("media: empty file")
	}
	if len(file.Data) > maxFileSize {
		return "", errors.Wrapf(ErrFileTooLarge, "%d bytes over the %d limit", len(file.Data), maxFileSize)
	}
	if !isAllowedImageName(file.Name) {
		return "", errors.Wrapf(ErrUnsupportedType, "extension %q", path.Ext(file.Name))
	}

	fileName := c.generateFileName(file.Name)

	if c.privateKey == "" {
		return c.urlEndpoint + "/" + folder + "/" + fileName, nil
	}

	body, contentType, bodyErr := c.buildMultipartBody(file, folder, fileName)
	if bodyErr != nil {
		return "", bodyErr
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if reqErr != nil {
		return "", errors.Wrap(reqErr, "media: building upload request")
	}
	req.Header.Set("Content-Type", contentType)
	req.SetBasicAuth(c.privateKey, "")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", errors.Wrap(doErr, "media: uploading file")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errors.Errorf("media: upload failed with status %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		URL string `json:"url"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		return "", errors.Wrap(decodeErr, "media: decoding upload response")
	}
	if result.URL == "" {
		return "", errors.New("media: upload response without url")
	}
	return result.URL, nil
}

func (c *ImageKitClient) buildMultipartBody(file File, folder, fileName string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, partErr := w.CreateFormFile("file", fileName)
	if partErr != nil {
		return nil, "", errors.Wrap(partErr, "media: building multipart body")
	}
	if _, writeErr := part.Write(file.Data); writeErr != nil {
		return nil, "", errors.Wrap(writeErr, "media: building multipart body")
	}

	fields := map[string]string{
		"fileName":          fileName,
		"folder":            folder,
		"useUniqueFileName": "false",
	}
	for name, value := range fields {
		if fieldErr := w.WriteField(name, value); fieldErr != nil {
			return nil, "", errors.Wrap(fieldErr, "media: building multipart body")
		}
	}

	if closeErr := w.Close(); closeErr != nil {
		return nil, "", errors.Wrap(closeErr, "media: building multipart body")
	}
	return &buf, w.FormDataContentType(), nil
}

// generateFileName формирует уникальное имя объекта, сохраняя расширение оригинала.
func (c *ImageKitClient) generateFileName(originalName string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), c.entropy)
	return fmt.Sprintf("%s%s", id.String(), strings.ToLower(path.Ext(originalName)))
}

func isAllowedImageName(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	default:
		return false
	}
}
