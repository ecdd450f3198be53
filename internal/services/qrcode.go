package services

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"github.com/mashiroreo/qr-menu-backend/internal/repo"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font/basicfont"
)

const (
	qrImageSize   = 512
	qrMargin      = 32
	captionHeight = 48
)

// QRCodeService renders the QR code that links guests to a store's public
// menu page
type QRCodeService struct {
	storeRepo *repo.StoreRepository
	storage   *StorageService
}

// NewQRCodeService creates a new QR code service
func NewQRCodeService(storeRepo *repo.StoreRepository, storage *StorageService) *QRCodeService {
	return &QRCodeService{storeRepo: storeRepo, storage: storage}
}

// GenerateForStore renders the store's menu QR code with the store name as
// a caption, uploads it and records the URL on the store
func (s *QRCodeService) GenerateForStore(storeID uuid.UUID) (string, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return "", err
	}

	menuURL := fmt.Sprintf("%s/menu/%s", publicBaseURL(), storeID)

	qr, err := qrcode.New(menuURL, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	qrImage := qr.Image(qrImageSize)

	width := qrImageSize + 2*qrMargin
	height := qrImageSize + 2*qrMargin + captionHeight

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.DrawImage(qrImage, qrMargin, qrMargin)

	dc.SetColor(color.Black)
	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawStringAnchored(store.Name, float64(width)/2, float64(height-captionHeight/2), 0.5, 0.5)

	buf := new(bytes.Buffer)
	if err := dc.EncodePNG(buf); err != nil {
		return "", fmt.Errorf("failed to encode QR image: %w", err)
	}

	key := fmt.Sprintf("%s/qrcode/%s.png", storeID, uuid.New().String())
	url, err := s.storage.UploadBytes(buf.Bytes(), key, "image/png")
	if err != nil {
		return "", err
	}

	store.QRCodeURL = url
	if err := s.storeRepo.Update(store); err != nil {
		return "", err
	}
	return url, nil
}

func publicBaseURL() string {
	if url := os.Getenv("PUBLIC_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}
