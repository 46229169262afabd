package entity

type Genre struct {
	BaseSimple
	Name        string `db:"name"`
	Description string `db:"description"`
	URL         string `db:"url"`
}
