package usecase

import (
	"fmt"
	"strings"
	"time"

	"insight-srv/internal/classification"
	"insight-srv/internal/model"
	"insight-srv/internal/sentiment"
	"insight-srv/pkg/locale"
)

const excerptRunes = 160

// reportData is everything a report renders. It is loaded before the
// report record is created so subject errors surface to the caller.
type reportData struct {
	Title       string
	ReportType  string
	Lang        string
	GeneratedAt time.Time

	Account  *model.Account
	Platform model.Platform

	Analysis sentiment.AggregateAnalysis
	Summary  string
	Stats    classification.Stats
	Samples  []model.Message
}

type labels struct {
	DefaultTitle    string
	Generated       string
	Account         string
	Platform        string
	Overview        string
	Sentiment       string
	AvgCompound     string
	ScamRisk        string
	TotalMessages   string
	ScamMessages    string
	Breakdown       string
	Positive        string
	Negative        string
	Neutral         string
	Keywords        string
	None            string
	Classification  string
	Category        string
	Count           string
	Safe            string
	Fraud           string
	Sensitive       string
	Spam            string
	Other           string
	Flagged         string
	HighRisk        string
	MediumRisk      string
	LowRisk         string
	Summary         string
	PlatformSummary string
	Samples         string
	NoSamples       string
}

var labelsByLang = map[string]labels{
	locale.EN: {
		DefaultTitle:    "Risk report: %s",
		Generated:       "Generated",
		Account:         "Account",
		Platform:        "Platform",
		Overview:        "Overview",
		Sentiment:       "Overall sentiment",
		AvgCompound:     "Average compound",
		ScamRisk:        "Scam risk",
		TotalMessages:   "Messages analyzed",
		ScamMessages:    "Messages with scam indicators",
		Breakdown:       "Sentiment breakdown",
		Positive:        "Positive",
		Negative:        "Negative",
		Neutral:         "Neutral",
		Keywords:        "Scam keywords",
		None:            "none",
		Classification:  "Classification",
		Category:        "Category",
		Count:           "Count",
		Safe:            "Safe",
		Fraud:           "Fraud",
		Sensitive:       "Sensitive",
		Spam:            "Spam",
		Other:           "Other",
		Flagged:         "Flagged",
		HighRisk:        "High risk (score >= 7)",
		MediumRisk:      "Medium risk (score 4-7)",
		LowRisk:         "Low risk (score < 4)",
		Summary:         "Summary",
		PlatformSummary: "%d messages on %s were analyzed. Scam risk is %s with %d messages carrying scam indicators.",
		Samples:         "Highest-risk messages",
		NoSamples:       "No high-risk messages.",
	},
	locale.VI: {
		DefaultTitle:    "Báo cáo rủi ro: %s",
		Generated:       "Thời gian tạo",
		Account:         "Tài khoản",
		Platform:        "Nền tảng",
		Overview:        "Tổng quan",
		Sentiment:       "Cảm xúc chung",
		AvgCompound:     "Điểm compound trung bình",
		ScamRisk:        "Mức rủi ro lừa đảo",
		TotalMessages:   "Số tin nhắn đã phân tích",
		ScamMessages:    "Tin nhắn có dấu hiệu lừa đảo",
		Breakdown:       "Phân bố cảm xúc",
		Positive:        "Tích cực",
		Negative:        "Tiêu cực",
		Neutral:         "Trung tính",
		Keywords:        "Từ khóa lừa đảo",
		None:            "không có",
		Classification:  "Phân loại",
		Category:        "Nhóm",
		Count:           "Số lượng",
		Safe:            "An toàn",
		Fraud:           "Lừa đảo",
		Sensitive:       "Nhạy cảm",
		Spam:            "Spam",
		Other:           "Khác",
		Flagged:         "Đã gắn cờ",
		HighRisk:        "Rủi ro cao (điểm >= 7)",
		MediumRisk:      "Rủi ro trung bình (điểm 4-7)",
		LowRisk:         "Rủi ro thấp (điểm < 4)",
		Summary:         "Tóm tắt",
		PlatformSummary: "Đã phân tích %d tin nhắn trên %s. Mức rủi ro lừa đảo: %s, có %d tin nhắn chứa dấu hiệu lừa đảo.",
		Samples:         "Tin nhắn rủi ro cao nhất",
		NoSamples:       "Không có tin nhắn rủi ro cao.",
	},
}

func labelsFor(lang string) labels {
	if l, ok := labelsByLang[lang]; ok {
		return l
	}
	return labelsByLang[locale.DefaultLang]
}

// subjectName is the account handle or the platform name.
func (d reportData) subjectName() string {
	if d.Account != nil {
		switch {
		case d.Account.Username != "":
			return "@" + d.Account.Username
		case d.Account.FirstName != "" || d.Account.LastName != "":
			return strings.TrimSpace(d.Account.FirstName + " " + d.Account.LastName)
		default:
			return d.Account.ExternalID
		}
	}
	return platformName(d.Platform)
}

func platformName(p model.Platform) string {
	switch p {
	case model.PlatformWhatsApp:
		return "WhatsApp"
	case model.PlatformYouTube:
		return "YouTube"
	case model.PlatformInstagram:
		return "Instagram"
	case model.PlatformTelegram:
		return "Telegram"
	default:
		return string(p)
	}
}

func (d reportData) title() string {
	if d.Title != "" {
		return d.Title
	}
	return fmt.Sprintf(labelsFor(d.Lang).DefaultTitle, d.subjectName())
}

func (d reportData) summary() string {
	if d.Summary != "" {
		return d.Summary
	}
	lb := labelsFor(d.Lang)
	return fmt.Sprintf(lb.PlatformSummary, d.Analysis.TotalMessages, d.subjectName(), d.Analysis.ScamRisk, d.Analysis.ScamMessageCount)
}

// renderMarkdown builds the report document.
func renderMarkdown(d reportData) string {
	lb := labelsFor(d.Lang)
	a := d.Analysis

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.title())
	fmt.Fprintf(&sb, "**%s:** %s\n\n", lb.Generated, d.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))
	if d.Account != nil {
		fmt.Fprintf(&sb, "**%s:** %s (%s)\n\n", lb.Account, d.subjectName(), platformName(d.Account.Platform))
	} else {
		fmt.Fprintf(&sb, "**%s:** %s\n\n", lb.Platform, d.subjectName())
	}

	fmt.Fprintf(&sb, "## %s\n\n", lb.Summary)
	sb.WriteString(d.summary())
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "## %s\n\n", lb.Overview)
	fmt.Fprintf(&sb, "- %s: %d\n", lb.TotalMessages, a.TotalMessages)
	fmt.Fprintf(&sb, "- %s: %s\n", lb.Sentiment, a.OverallSentiment)
	fmt.Fprintf(&sb, "- %s: %.4f\n", lb.AvgCompound, a.AvgCompound)
	fmt.Fprintf(&sb, "- %s: **%s**\n", lb.ScamRisk, a.ScamRisk)
	fmt.Fprintf(&sb, "- %s: %d\n", lb.ScamMessages, a.ScamMessageCount)
	keywords := lb.None
	if len(a.ScamKeywords) > 0 {
		keywords = strings.Join(a.ScamKeywords, ", ")
	}
	fmt.Fprintf(&sb, "- %s: %s\n\n", lb.Keywords, keywords)

	fmt.Fprintf(&sb, "### %s\n\n", lb.Breakdown)
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", lb.Sentiment, lb.Count)
	fmt.Fprintf(&sb, "| %s | %d |\n", lb.Positive, a.SentimentBreakdown.Positive)
	fmt.Fprintf(&sb, "| %s | %d |\n", lb.Negative, a.SentimentBreakdown.Negative)
	fmt.Fprintf(&sb, "| %s | %d |\n\n", lb.Neutral, a.SentimentBreakdown.Neutral)

	s := d.Stats
	fmt.Fprintf(&sb, "## %s\n\n", lb.Classification)
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", lb.Category, lb.Count)
	for _, row := range []struct {
		name  string
		count int
	}{
		{lb.Safe, s.Safe},
		{lb.Fraud, s.Fraud},
		{lb.Sensitive, s.Sensitive},
		{lb.Spam, s.Spam},
		{lb.Other, s.Other},
		{lb.Flagged, s.Flagged},
		{lb.HighRisk, s.HighRisk},
		{lb.MediumRisk, s.MediumRisk},
		{lb.LowRisk, s.LowRisk},
	} {
		fmt.Fprintf(&sb, "| %s | %d |\n", row.name, row.count)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", lb.Samples)
	if len(d.Samples) == 0 {
		sb.WriteString(lb.NoSamples)
		sb.WriteString("\n")
		return sb.String()
	}
	for i, m := range d.Samples {
		score := "-"
		if m.RiskScore != nil {
			score = fmt.Sprintf("%.1f", *m.RiskScore)
		}
		fmt.Fprintf(&sb, "%d. [%s] %s, %s (%s): %s\n", i+1, score, m.Timestamp.UTC().Format("2006-01-02"),
			orDash(m.ChatName), m.Label, excerpt(m.Text))
	}

	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// excerpt flattens newlines and truncates text to excerptRunes runes.
func excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= excerptRunes {
		return text
	}
	return string(r[:excerptRunes]) + "..."
}
