package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AnalyticsReport is one snapshot of the dashboard's fabricated metrics.
type AnalyticsReport struct {
	ReportDate     string
	TotalUsers     int
	ActiveSessions int
	DataProcessed  string
	ConversionRate string
	Revenue        string
	TopFeatures    []string
	UserGrowth     string
	SystemUptime   string
}

const (
	baseTotalUsers     = 1247
	baseActiveSessions = 89
	baseConversionPct  = 3.2
	baseRevenueUSD     = 125000
)

// GenerateReport fabricates a report with counters randomized inside the
// documented bounds.
func (e *Engine) GenerateReport() AnalyticsReport {
	return AnalyticsReport{
		ReportDate:     e.now().Format("2006-01-02"),
		TotalUsers:     baseTotalUsers + e.intn(100),
		ActiveSessions: baseActiveSessions + e.intn(20),
		DataProcessed:  "2.4 TB",
		ConversionRate: fmt.Sprintf("%.2f%%", baseConversionPct+e.float()),
		Revenue:        "$" + formatThousands(baseRevenueUSD+e.intn(25000)),
		TopFeatures:    []string{"AI Chat", "Analytics", "Automation", "Predictions"},
		UserGrowth:     "+15.3%",
		SystemUptime:   "99.9%",
	}
}

// Render returns the plain-text report body.
func (r AnalyticsReport) Render() string {
	var b strings.Builder
	b.WriteString("FUTURISTIC AID - ANALYTICS REPORT\n")
	b.WriteString("================================\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.ReportDate)
	b.WriteString("KEY METRICS:\n")
	fmt.Fprintf(&b, "- Total Users: %d\n", r.TotalUsers)
	fmt.Fprintf(&b, "- Active Sessions: %d\n", r.ActiveSessions)
	fmt.Fprintf(&b, "- Data Processed: %s\n", r.DataProcessed)
	fmt.Fprintf(&b, "- Conversion Rate: %s\n", r.ConversionRate)
	fmt.Fprintf(&b, "- Revenue: %s\n", r.Revenue)
	fmt.Fprintf(&b, "- User Growth: %s\n", r.UserGrowth)
	fmt.Fprintf(&b, "- System Uptime: %s\n\n", r.SystemUptime)
	b.WriteString("TOP FEATURES:\n")
	for _, f := range r.TopFeatures {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\nThis report was generated by Futuristic AID Analytics Engine.\n")
	return b.String()
}

// Filename returns the export name for the report, date included.
func (r AnalyticsReport) Filename() string {
	return fmt.Sprintf("futuristic-aid-report-%s.txt", r.ReportDate)
}

// Export writes the rendered report into dir and returns the full path.
func (r AnalyticsReport) Export(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, r.Filename())
	if err := os.WriteFile(path, []byte(r.Render()), 0644); err != nil {
		return "", fmt.Errorf("export report: %w", err)
	}
	return path, nil
}

// ReportProgressSteps are the staged completion percentages surfaced while
// a report "generates".
var ReportProgressSteps = []int{20, 40, 60, 80, 100}

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
