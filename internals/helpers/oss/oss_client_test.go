package oss

import (
	"io"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "data-structures-2024", slugify("Data Structures 2024"))
	assert.Equal(t, "mid-sem", slugify("Mid_Sem"))
	assert.Equal(t, "paper", slugify("???"))
	assert.Equal(t, "paper", slugify(""))
}

func TestBuildObjectKey(t *testing.T) {
	s := &OSSService{Prefix: "papers"}
	key := s.buildObjectKey("Mid Sem 2024.PDF")
	assert.True(t, strings.HasPrefix(key, "papers/mid-sem-2024_"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	s = &OSSService{}
	key = s.buildObjectKey(".pdf")
	assert.True(t, strings.HasPrefix(key, "paper_"))
}

func TestPublicURL(t *testing.T) {
	s := &OSSService{Endpoint: "https://oss-ap-southeast-5.aliyuncs.com", BucketName: "pyqbank"}
	assert.Equal(t,
		"https://pyqbank.oss-ap-southeast-5.aliyuncs.com/papers/a.pdf",
		s.PublicURL("papers/a.pdf"))
	assert.Equal(t, "", s.PublicURL(""))

	t.Setenv("ALI_OSS_PUBLIC_BASE", "https://cdn.example.com/")
	assert.Equal(t, "https://cdn.example.com/papers/a.pdf", s.PublicURL("papers/a.pdf"))
}

type pdfFile struct {
	*strings.Reader
}

func (pdfFile) Close() error { return nil }

func TestEnsurePDF(t *testing.T) {
	body := "%PDF-1.7\n" + strings.Repeat("x", 600)
	r, err := ensurePDF(pdfFile{strings.NewReader(body)}, "exam.pdf")
	require.NoError(t, err)

	// The sniffed head must be stitched back so nothing is lost.
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, body, string(all))

	// Wrong extension.
	_, err = ensurePDF(pdfFile{strings.NewReader(body)}, "exam.docx")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// PDF extension but not PDF content.
	_, err = ensurePDF(pdfFile{strings.NewReader("<html><body>nope</body></html>")}, "exam.pdf")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
