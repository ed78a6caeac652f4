package service

import (
	"fmt"
	"time"

	"github.com/adhikarnow/legal-service/internal/notice"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// NoticeService renders downloadable legal notices. Nothing is persisted.
type NoticeService struct {
	clock func() time.Time
}

// NewNoticeService builds the service. A nil clock uses time.Now.
func NewNoticeService(clock func() time.Time) *NoticeService {
	if clock == nil {
		clock = time.Now
	}
	return &NoticeService{clock: clock}
}

// Generate fills the notice template and returns the PDF bytes and the
// download filename.
func (s *NoticeService) Generate(fields notice.Fields) ([]byte, string, error) {
	now := s.clock()
	pdf, err := notice.Render(fields, now)
	if err != nil {
		return nil, "", httperr.Internal(err)
	}
	filename := fmt.Sprintf("Legal_Notice_%d.pdf", now.UnixMilli())
	return pdf, filename, nil
}
