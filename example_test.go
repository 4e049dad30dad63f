package docfmt_test

import (
	"fmt"

	"github.com/alnah/go-docfmt"
)

func ExampleCheck() {
	text := "摘要：本文研究自动排版。\n\n关键词：排版；文档\n\n正文第一段。"

	report := docfmt.Check(text, docfmt.ModeLoose)
	fmt.Println(report.IsValid)
	fmt.Println(len(report.Paragraphs))
	fmt.Println(report.Paragraphs[0].Type)
	// Output:
	// true
	// 3
	// abstract_cn
}

func ExampleDetectInputFormat() {
	fmt.Println(docfmt.DetectInputFormat("# Title\n\n## Section\n\n```go\ncode\n```"))
	fmt.Println(docfmt.DetectInputFormat("摘要：本文研究了排版问题。"))
	// Output:
	// markdown
	// plaintext
}
