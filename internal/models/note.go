package models

type Note struct {
	ID     string
	Title  string
	Detail string
	// Image is the URI returned by the image picker, nil when none was chosen.
	Image *string
}
