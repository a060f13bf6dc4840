package domain

import "errors"

var (
	ErrVersionNotFound   = errors.New("version not found")
	ErrLoaderNotFound    = errors.New("loader does not exist for game version")
	ErrMalformedDocument = errors.New("malformed document")

	ErrScenarioUnknown   = errors.New("scenario does not exist")
	ErrComponentNotFound = errors.New("component not found")
	ErrFieldNotFound     = errors.New("field not found")
	ErrStateUnreadable   = errors.New("instance state unreadable")
	ErrInstanceNotFound  = errors.New("instance not found")
	ErrInstanceName      = errors.New("invalid instance name")

	ErrLibraryNoClassifiers = errors.New("library has no classifier for platform")
	ErrInstanceExists       = errors.New("instance already exists")

	ErrArgumentsNotFound = errors.New("arguments not found")

	ErrNoUserHash        = errors.New("no user hash in identity response")
	ErrAuthorizationCode = errors.New("authorization code not delivered")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountExists     = errors.New("account already exists")

	ErrPathNotRegistered = errors.New("path not registered")
)

// Category groups errors by the pipeline stage that raised them.
type Category string

const (
	CategoryAPI      Category = "api"
	CategoryState    Category = "state"
	CategoryDownload Category = "download"
	CategoryLaunch   Category = "launch"
	CategoryAccount  Category = "account"
	CategoryPath     Category = "path"
)

type Error struct {
	Category Category
	Err      error
}

func (e *Error) Error() string {
	return string(e.Category) + " error: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with a category. A nil err stays nil and an already
// categorized error keeps its original category.
func Wrap(category Category, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Category: category, Err: err}
}

func CategoryOf(err error) (Category, bool) {
	var categorized *Error
	if errors.As(err, &categorized) {
		return categorized.Category, true
	}
	return "", false
}
