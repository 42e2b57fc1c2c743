package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// catalog holds every user-facing string of one report language. Issue
// messages are templates with {param} placeholders filled from Issue.Params.
type catalog struct {
	levels  map[domain.QualityLevel]string
	issues  map[domain.IssueCode]string
	metrics map[string]string
	strings map[string]string
}

// catalogFor returns the catalog for a report language tag, falling back
// to Chinese, the original voice of the tool
func catalogFor(lang string) *catalog {
	if lang == constants.ReportLangEN {
		return &englishCatalog
	}
	return &chineseCatalog
}

// LevelLabel renders a quality level
func (c *catalog) LevelLabel(level domain.QualityLevel) string {
	if label, ok := c.levels[level]; ok {
		return label
	}
	return string(level)
}

// IssueMessage renders one issue through its template
func (c *catalog) IssueMessage(issue domain.Issue) string {
	tmpl, ok := c.issues[issue.Code]
	if !ok {
		return string(issue.Code)
	}
	return fillTemplate(tmpl, issue.Params)
}

// MetricLabel renders a metric name
func (c *catalog) MetricLabel(name string) string {
	if label, ok := c.metrics[name]; ok {
		return label
	}
	return name
}

// Text renders a plain report string
func (c *catalog) Text(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	return key
}

// fillTemplate substitutes {param} placeholders; unknown placeholders stay
// visible so broken templates are noticed
func fillTemplate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", params[k])
	}
	return tmpl
}

// severityLabel renders a severity in the catalog language
func (c *catalog) severityLabel(s domain.Severity) string {
	return c.Text("severity." + string(s))
}

// scoreLine formats the headline score with its level
func (c *catalog) scoreLine(score float64, level domain.QualityLevel) string {
	return fmt.Sprintf("%s: %.2f (%s)", c.Text("report.score"), score, c.LevelLabel(level))
}

var chineseCatalog = catalog{
	levels: map[domain.QualityLevel]string{
		domain.QualityExcellent: "清新可人",
		domain.QualityGood:      "偶有异味",
		domain.QualityAverage:   "微臭青年",
		domain.QualityPoor:      "屎气扑鼻",
		domain.QualityBad:       "中度屎山",
		domain.QualityTerrible:  "隐性毒瘤",
		domain.QualityHorrible:  "重度屎山",
		domain.QualityDisaster:  "代码化尸场",
		domain.QualityNuclear:   "核平级灾难",
		domain.QualityLegendary: "祖传老屎",
		domain.QualityUltimate:  "终极屎王",
	},
	issues: map[domain.IssueCode]string{
		domain.IssueParseFailed:          "文件解析失败: {reason}",
		domain.IssueUnreadableFile:       "文件无法读取",
		domain.IssueHighComplexity:       "函数 {function} 圈复杂度为 {complexity}，拆了吧",
		domain.IssueDeepNesting:          "函数 {function} 嵌套深度达到 {depth} 层，俄罗斯套娃都没你能套",
		domain.IssueLongFunction:         "函数 {function} 有 {statements} 条语句，一个函数只干一件事",
		domain.IssueTooManyParams:        "函数 {function} 有 {parameters} 个参数，考虑封装成对象",
		domain.IssueLowCommentRatio:      "注释太少了，后人会骂你的",
		domain.IssueMissingErrorHandling: "函数 {function} 有 {risky_ops} 处危险操作但没有任何错误处理",
		domain.IssueNamingViolation:      "标识符 {identifier} 不符合 {expected} 命名习惯",
		domain.IssueDuplicateBlock:       "发现 {lines} 行重复代码，首次出现于 {first_seen}",
		domain.IssueFileTooLong:          "文件长达 {lines} 行，该分家了",
		domain.IssueTooManyFunctions:     "文件里塞了 {functions} 个函数",
		domain.IssueGodFunction:          "函数 {function} 独占 {lines} 行，这是上帝函数",
	},
	metrics: map[string]string{
		constants.MetricComplexity:       "循环复杂度",
		constants.MetricFunctionLength:   "函数长度",
		constants.MetricCommentRatio:     "注释覆盖率",
		constants.MetricErrorHandling:    "错误处理",
		constants.MetricNamingConvention: "命名规范",
		constants.MetricDuplication:      "代码重复度",
		constants.MetricStructure:        "代码结构",
	},
	strings: map[string]string{
		"report.title":        "屎山代码检测报告",
		"report.score":        "总体评分",
		"report.files":        "分析文件数",
		"report.lines":        "总行数",
		"report.worst":        "最臭的文件",
		"report.breakdown":    "指标明细",
		"report.issues":       "问题",
		"report.warnings":     "警告",
		"report.no_files":     "没有找到可分析的源文件",
		"report.issues_total": "问题总数",
		"severity.info":       "提示",
		"severity.warning":    "警告",
		"severity.critical":   "严重",
	},
}

var englishCatalog = catalog{
	levels: map[domain.QualityLevel]string{
		domain.QualityExcellent: "fresh and clean",
		domain.QualityGood:      "occasional odor",
		domain.QualityAverage:   "mildly smelly",
		domain.QualityPoor:      "reeking",
		domain.QualityBad:       "moderate dung heap",
		domain.QualityTerrible:  "hidden tumor",
		domain.QualityHorrible:  "severe dung mountain",
		domain.QualityDisaster:  "code graveyard",
		domain.QualityNuclear:   "nuclear disaster",
		domain.QualityLegendary: "ancestral legacy dung",
		domain.QualityUltimate:  "ultimate dung king",
	},
	issues: map[domain.IssueCode]string{
		domain.IssueParseFailed:          "failed to parse file: {reason}",
		domain.IssueUnreadableFile:       "file could not be read",
		domain.IssueHighComplexity:       "function {function} has cyclomatic complexity {complexity}, split it up",
		domain.IssueDeepNesting:          "function {function} nests {depth} levels deep",
		domain.IssueLongFunction:         "function {function} has {statements} statements, do one thing per function",
		domain.IssueTooManyParams:        "function {function} takes {parameters} parameters, consider a struct",
		domain.IssueLowCommentRatio:      "too few comments, future readers will curse you",
		domain.IssueMissingErrorHandling: "function {function} has {risky_ops} risky operations and no error handling",
		domain.IssueNamingViolation:      "identifier {identifier} does not follow {expected}",
		domain.IssueDuplicateBlock:       "{lines} duplicated lines, first seen in {first_seen}",
		domain.IssueFileTooLong:          "file is {lines} lines long, time to split",
		domain.IssueTooManyFunctions:     "file crams in {functions} functions",
		domain.IssueGodFunction:          "function {function} hogs {lines} lines, that is a god function",
	},
	metrics: map[string]string{
		constants.MetricComplexity:       "cyclomatic complexity",
		constants.MetricFunctionLength:   "function length",
		constants.MetricCommentRatio:     "comment coverage",
		constants.MetricErrorHandling:    "error handling",
		constants.MetricNamingConvention: "naming conventions",
		constants.MetricDuplication:      "code duplication",
		constants.MetricStructure:        "code structure",
	},
	strings: map[string]string{
		"report.title":        "Legacy Dung Report",
		"report.score":        "Overall score",
		"report.files":        "Files analyzed",
		"report.lines":        "Total lines",
		"report.worst":        "Smelliest files",
		"report.breakdown":    "Metric breakdown",
		"report.issues":       "Issues",
		"report.warnings":     "Warnings",
		"report.no_files":     "no analyzable source files found",
		"report.issues_total": "Total issues",
		"severity.info":       "info",
		"severity.warning":    "warning",
		"severity.critical":   "critical",
	},
}
