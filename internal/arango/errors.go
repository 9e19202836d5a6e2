package arango

import "fmt"

// AlreadyExistsError は対象のリソースが既に存在することを示す
type AlreadyExistsError struct {
	Resource string // "database" または "collection"
	Name     string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Name)
}

// NotFoundError は対象のリソースが存在しないことを示す
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Name)
}

// InvalidResponseError は想定外のHTTPステータスを示す。
// ステータスコードとレスポンス本文をそのまま保持する。
type InvalidResponseError struct {
	Status int
	Body   string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response: %d - %s", e.Status, e.Body)
}

// TransportError はHTTPステータス以前のネットワーク層の失敗を示す
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
