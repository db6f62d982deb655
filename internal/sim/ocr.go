package sim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingFile is returned when no input file was provided.
var ErrMissingFile = errors.New("please select an image file")

// OCRResult is one simulated text extraction.
type OCRResult struct {
	FileName  string
	FileSize  int64
	Text      string
	Processed string
}

var ocrSamples = []string{
	"FUTURISTIC AID\nAdvanced Intelligence Dashboard\n\nWelcome to the future of AI technology.\nThis document contains important information\nabout our advanced systems and capabilities.\n\nFeatures include:\n• Real-time analytics\n• Predictive modeling\n• Automated workflows\n• Multi-language support\n\nFor more information, visit our website.",
	"INVOICE\n\nDate: %s\nInvoice #: FA-2024-001\n\nBill To:\nFuturistic AID Client\n123 Tech Street\nSilicon Valley, CA\n\nDescription: AI Services\nAmount: $1,299.00\nTax: $129.90\nTotal: $1,428.90\n\nThank you for your business!",
	"MEETING NOTES\n\nDate: %s\nAttendees: AI Team\n\nAgenda:\n1. System performance review\n2. New feature deployment\n3. User feedback analysis\n4. Security updates\n\nAction Items:\n- Optimize prediction algorithms\n- Enhance user interface\n- Implement new security protocols\n\nNext meeting: Next week",
}

// ExtractText picks one canned document for the named file. The path only
// has to exist as a name; file contents are never read.
func (e *Engine) ExtractText(fileName string, fileSize int64) (OCRResult, error) {
	if strings.TrimSpace(fileName) == "" {
		return OCRResult{}, ErrMissingFile
	}
	sample := ocrSamples[e.intn(len(ocrSamples))]
	if strings.Contains(sample, "%s") {
		sample = fmt.Sprintf(sample, e.now().Format("1/2/2006"))
	}
	return OCRResult{
		FileName:  fileName,
		FileSize:  fileSize,
		Text:      sample,
		Processed: e.now().Format("15:04:05"),
	}, nil
}

// ExportFilename returns the date-stamped name for an extracted-text export.
func (r OCRResult) ExportFilename(date string) string {
	return fmt.Sprintf("extracted-text-%s.txt", date)
}

// Export writes the extracted text into dir and returns the full path.
func (e *Engine) Export(r OCRResult, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, r.ExportFilename(e.now().Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(r.Text), 0644); err != nil {
		return "", fmt.Errorf("export extracted text: %w", err)
	}
	return path, nil
}
