// Package skillsheet converts a résumé-style markdown document (a "skill
// sheet") into Word, Excel, HTML and PDF files.
//
// # Quick Start
//
//	conv, err := skillsheet.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	xlsx, err := conv.ToWorkbook(ctx, skillsheet.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("sheet.xlsx", xlsx, 0o644)
//
// # Extraction
//
// The workbook is built from records pulled out of the document by an
// Extractor: basic information, specialties, skill tables, self-PR items,
// project history, the responsibility matrix and strengths. Sections are
// located by heading; the headings come from a Vocabulary, and
// DefaultVocabulary describes the Japanese skill sheet layout:
//
//	## 📋 基本情報
//	## 🎯 得意分野            (### 得意言語, ### 得意業務)
//	### 開発言語 / フレームワーク / データベース / サーバー・OS
//	## 🌟 自己PR・備考
//	## 📈 職歴・プロジェクト経験（時系列順）
//	## 📊 担当領域
//	## 🎯 強み・特徴
//
// Missing sections, tables or fields never fail a conversion. They yield
// empty records and, where an entry is dropped, a debug log line.
//
// # Rendering
//
// Word and HTML output translate the whole markdown document line by line
// with fixed styling (DocumentStyle, HTMLStyle). PDF output renders the HTML
// document in headless Chrome (go-rod). Set ROD_BROWSER_BIN to use a custom
// Chrome binary and ROD_NO_SANDBOX=1 in containers.
package skillsheet
