package catalog

import (
	"github.com/dineshpandey3618-web/Rank1/core"
)

// ClassLabels are the seven classes content can be filed under.
var ClassLabels = []string{
	"Class 6", "Class 7", "Class 8", "Class 9", "Class 10", "Class 11", "Class 12",
}

type (
	Subject struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Class string `json:"class"`
		Icon  string `json:"icon"`
	}

	Chapter struct {
		ID        int    `json:"id"`
		SubjectID int    `json:"subject_id"`
		Name      string `json:"name"`
	}

	Material struct {
		ID        int    `json:"id"`
		ChapterID int    `json:"chapter_id"`
		Type      string `json:"type"`
		Title     string `json:"title"`
		Link      string `json:"link"`
	}

	Test struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Class   string `json:"class"`
		Subject string `json:"subject"`
		Price   int    `json:"price"`
	}
)

type NewSubject struct {
	Name  string `json:"name" validate:"required"`
	Class string `json:"class" validate:"required,classlabel"`
	Icon  string `json:"icon" validate:"required"`
}

func (ns *NewSubject) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Class = core.CleanString(ns.Class)
	ns.Icon = core.CleanString(ns.Icon)
	return core.Validate.Struct(ns)
}

type NewChapter struct {
	SubjectID int    `json:"subject_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

func (nc *NewChapter) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

type NewMaterial struct {
	ChapterID int    `json:"chapter_id" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Link      string `json:"link" validate:"required,url"`
}

func (nm *NewMaterial) Validate() error {
	nm.Type = core.CleanString(nm.Type)
	nm.Title = core.CleanString(nm.Title)
	nm.Link = core.CleanString(nm.Link)
	return core.Validate.Struct(nm)
}

type NewTest struct {
	Name    string `json:"name" validate:"required"`
	Class   string `json:"class" validate:"required,classlabel"`
	Subject string `json:"subject" validate:"required"`
	Price   int    `json:"price" validate:"gte=0"`
}

func (nt *NewTest) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Class = core.CleanString(nt.Class)
	nt.Subject = core.CleanString(nt.Subject)
	return core.Validate.Struct(nt)
}
