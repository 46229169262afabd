package request

type ActorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Age         int    `json:"age" validate:"min=0,max=150"`
	Description string `json:"description" validate:"max=5000"`
}

type DirectorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Age  int    `json:"age" validate:"min=0,max=150"`
}
