package entity

type Actor struct {
	BaseSimple
	Name        string `db:"name"`
	Age         int    `db:"age"`
	Description string `db:"description"`
}

type Director struct {
	BaseSimple
	Name string `db:"name"`
	Age  int    `db:"age"`
}
