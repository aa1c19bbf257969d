package entity

// Window is a zero-based slice of a collection, To inclusive.
type Window struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Size int `yaml:"size"`
}

// PageState describes the window currently displayed.
type PageState struct {
	Page *Window
}
