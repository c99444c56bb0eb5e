package oss

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
)

// MaxPaperSize caps uploaded question papers at 10 MB.
const MaxPaperSize = int64(10 * 1024 * 1024)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

/* =======================================================================
   Upload
======================================================================= */

// UploadPaperPDF validates that fh is a PDF within the size cap, uploads it
// and returns (publicURL, objectKey).
func (s *OSSService) UploadPaperPDF(fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Please upload a PDF file")
	}
	if fh.Size > MaxPaperSize {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File size exceeds the 10MB limit")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	reader, err := ensurePDF(src, fh.Filename)
	if err != nil {
		return "", "", err
	}

	key := s.buildObjectKey(fh.Filename)
	opts := []oss.Option{
		oss.ContentType("application/pdf"),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, reader, opts...); err != nil {
		return "", "", err
	}
	return s.PublicURL(key), key, nil
}

// ensurePDF sniffs the first 512 bytes and checks the extension.
func ensurePDF(src multipart.File, filename string) (io.Reader, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only PDF files are allowed")
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read head: %w", err)
	}
	head = head[:n]

	ct := http.DetectContentType(head)
	if !strings.Contains(ct, "pdf") {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only PDF files are allowed")
	}
	return io.MultiReader(bytes.NewReader(head), src), nil
}

/* =======================================================================
   Delete
======================================================================= */

func (s *OSSService) DeleteObject(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	return s.Bucket.DeleteObject(key)
}

// DeleteBestEffort removes an object and only logs on failure. Used where a
// blob delete must not fail the surrounding request (paper file replacement,
// paper delete after the row is gone).
func (s *OSSService) DeleteBestEffort(key string) {
	if key == "" {
		return
	}
	if err := s.DeleteObject(key); err != nil {
		log.Printf("[OSS] best-effort delete failed key=%s err=%v", key, err)
	}
}

/* =======================================================================
   Public URL & key utils
======================================================================= */

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

func (s *OSSService) buildObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "paper"
	}
	ts := time.Now().Format("20060102_150405")

	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	return fmt.Sprintf("%s%s_%s_%s%s", prefix, slugify(base), ts, randHex(3), ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "paper"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
