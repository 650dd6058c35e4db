package service

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/media"
)

type stubImageProcessor struct {
	output      []byte
	contentType string
	extension   string
	err         error

	calls   int
	last    media.Upload
	lastMax int
}

func (s *stubImageProcessor) Process(ctx context.Context, upload media.Upload, maxDimension int) (*media.Result, error) {
	s.calls++
	s.last = upload
	s.lastMax = maxDimension
	if s.err != nil {
		return nil, s.err
	}
	ct := s.contentType
	if ct == "" {
		ct = "image/png"
	}
	ext := s.extension
	if ext == "" {
		ext = ".png"
	}
	return &media.Result{
		Bytes:       append([]byte(nil), s.output...),
		ContentType: ct,
		Extension:   ext,
		Width:       16,
		Height:      16,
	}, nil
}

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	removed []string
	err     error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (s *memoryStorage) Upload(_ context.Context, bucket, objectName, _ string, reader io.Reader, _ int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+objectName] = buf.Bytes()
	return "https://cdn.example.com/" + bucket + "/" + objectName, nil
}

func (s *memoryStorage) Remove(_ context.Context, bucket, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, bucket+"/"+objectName)
	s.removed = append(s.removed, bucket+"/"+objectName)
	return nil
}

type recordingMailer struct {
	to       []string
	requests []domain.AvailabilityRequest
	err      error
}

func (m *recordingMailer) SendAvailabilityRequest(_ context.Context, to string, request domain.AvailabilityRequest) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.requests = append(m.requests, request)
	return nil
}
