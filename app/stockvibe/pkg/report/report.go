package report

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

//go:embed templates/report.html
var templatesFS embed.FS

var reportTpl = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"clamp":     Clamp,
	"vibeColor": VibeColor,
	"ago":       Ago,
	"date":      func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}).ParseFS(templatesFS, "templates/report.html"))

// 分数区间对应的颜色
const (
	ColorBullish = "#12a060"
	ColorNeutral = "#f4a200"
	ColorBearish = "#e63946"
)

// HTMLData 用于模板渲染的数据
type HTMLData struct {
	Result *model.AggregatedResult
	Now    time.Time
}

// Clamp 把分数限制在 [0, 100]，上游给出越界值时只影响展示
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// VibeColor 分数对应的颜色：>=65 绿，>=40 黄，其余红
func VibeColor(score int) string {
	score = Clamp(score)
	switch {
	case score >= 65:
		return ColorBullish
	case score >= 40:
		return ColorNeutral
	default:
		return ColorBearish
	}
}

// Ago 相对时间，例如 "3 hours ago"；时间缺失时返回空串
func Ago(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Render 将聚合结果渲染为完整的 HTML 页面
func Render(w io.Writer, result *model.AggregatedResult, now time.Time) error {
	return reportTpl.Execute(w, HTMLData{Result: result, Now: now})
}
