package media

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ImageKitClientTestSuite struct {
	suite.Suite
	client *ImageKitClient
}

func TestImageKitClientSuite(t *testing.T) {
	suite.Run(t, new(ImageKitClientTestSuite))
}

func (s *ImageKitClientTestSuite) SetupTest() {
	// Без приватного ключа клиент работает в режиме заглушки: URL собирается
	// локально, сетевых запросов нет.
	s.client = NewImageKitClient("", "https://cdn.example.com/")
}

func (s *ImageKitClientTestSuite) TestUpload() {
	url, err := s.client.Upload(s.T().Context(), File{Name: "proof.PNG", Data: []byte("png data")}, "deposit-proofs")
	s.Require().NoError(err)

	s.True(strings.HasPrefix(url, "https://cdn.example.com/deposit-proofs/"))
	// Имя объекта уникальное, расширение оригинала сохраняется в нижнем регистре.
	s.True(strings.HasSuffix(url, ".png"))
	s.NotContains(url, "proof")
}

func (s *ImageKitClientTestSuite) TestUpload_Validation() {
	cases := []struct {
		name    string
		file    File
		wantErr error
	}{
		{
			name: "oversized file",
			file:    File{Name: "big.jpg", Data: make([]byte, maxFileSize+1)},
			wantErr: ErrFileTooLarge,
		}, {
			name:    "unsupported extension",
			file:    File{Name: "document.pdf", Data: []byte("pdf data")},
			wantErr: ErrUnsupportedType,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.client.Upload(s.T().Context(), t.file, "deposit-proofs")
			s.Require().ErrorIs(err, t.wantErr)
		})
	}

	_, emptyErr := s.client.Upload(s.T().Context(), File{Name: "empty.jpg"}, "deposit-proofs")
	s.Require().Error(emptyErr)
}

func (s *ImageKitClientTestSuite) TestUpload_Concurrent() {
	// Загрузки идут из конкурентных хендлеров и делят один генератор имен:
	// все вызовы должны пройти без гонки и выдать уникальные имена.
	const uploads = 32

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		urls = make(map[string]struct{}, uploads)
	)

	for range uploads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url, err := s.client.Upload(s.T().Context(), File{Name: "avatar.jpg", Data: []byte("jpg data")}, "profile-images")
			s.NoError(err)

			mu.Lock()
			defer mu.Unlock()
			urls[url] = struct{}{}
		}()
	}
	wg.Wait()

	s.Len(urls, uploads)
}
