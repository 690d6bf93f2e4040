package skillsheet

import "github.com/alnah/go-skillsheet/internal/workbook"

// workbookSheets lays out the records of s as the seven worksheets of style.
func workbookSheets(s *SkillSheet, style WorkbookStyle) []workbook.Sheet {
	l := style.Sheets
	return []workbook.Sheet{
		layoutSheet(l.BasicInfo, basicInfoRows(s.BasicInfo)),
		layoutSheet(l.Specialties, specialtyRows(s.Specialties)),
		layoutSheet(l.Skills, skillRows(s.Skills)),
		layoutSheet(l.SelfPR, numberedRows(s.SelfPR)),
		layoutSheet(l.Projects, projectRows(s.Projects)),
		responsibilitySheet(l.Responsibility, s.Responsibility),
		layoutSheet(l.Strengths, numberedRows(s.Strengths)),
	}
}

func layoutSheet(l SheetLayout, rows [][]any) workbook.Sheet {
	return workbook.Sheet{Name: l.Name, Header: l.Columns, Rows: rows, Widths: l.Widths}
}

// responsibilitySheet uses the matrix header. An empty matrix leaves the
// sheet blank.
func responsibilitySheet(l SheetLayout, m ResponsibilityMatrix) workbook.Sheet {
	if m.Empty() {
		return workbook.Sheet{Name: l.Name}
	}
	rows := make([][]any, len(m.Rows))
	for i, r := range m.Rows {
		rows[i] = stringRow(r...)
	}
	return workbook.Sheet{Name: l.Name, Header: m.Header, Rows: rows, Widths: l.Widths}
}

func basicInfoRows(kv *KeyValues) [][]any {
	var rows [][]any
	for k, v := range kv.All() {
		rows = append(rows, stringRow(k, v))
	}
	return rows
}

// specialtyRows writes one row per item, repeating the category.
func specialtyRows(specialties []Specialty) [][]any {
	var rows [][]any
	for _, sp := range specialties {
		for _, item := range sp.Items {
			rows = append(rows, stringRow(sp.Category, item))
		}
	}
	return rows
}

func skillRows(categories []SkillCategory) [][]any {
	var rows [][]any
	for _, cat := range categories {
		for tech, years := range cat.Skills.All() {
			rows = append(rows, stringRow(cat.Category, tech, years))
		}
	}
	return rows
}

// numberedRows numbers items from 1.
func numberedRows(items []string) [][]any {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = []any{i + 1, item}
	}
	return rows
}

func projectRows(projects []Project) [][]any {
	rows := make([][]any, len(projects))
	for i, p := range projects {
		rows[i] = stringRow(p.Fields()...)
	}
	return rows
}

func stringRow(cells ...string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
