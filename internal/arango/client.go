package arango

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"arango-stress/internal/document"
)

// duplicateMarker は409レスポンス本文に含まれる重複リソースのマーカー
const duplicateMarker = "duplicate"

// Gateway はクラスタに対するステートレスなデータプレーン操作を定義するインターフェース
type Gateway interface {
	Ping(ctx context.Context, endpoint string) error
	DatabaseExists(ctx context.Context, endpoint, name string) bool
	CreateDatabase(ctx context.Context, endpoint, name string) error
	DropDatabase(ctx context.Context, endpoint, name string) error
	CollectionExists(ctx context.Context, endpoint, database, name string) bool
	CreateCollection(ctx context.Context, endpoint, database, name string, shards, replicationFactor int) error
	InsertBatch(ctx context.Context, endpoint, database, collection string, docs []document.Document) error
}

// Ensure Client implements Gateway
var _ Gateway = (*Client)(nil)

// Client はArangoDB HTTP APIの薄いクライアント。
// リトライは行わず、リクエスト毎のタイムアウトも設定しない。
type Client struct {
	http     *http.Client
	username string
	password string
}

// NewClient は新しいClientを作成する。認証情報はそのままBasic認証として
// 各リクエストに付与される
func NewClient(username, password string) *Client {
	return &Client{
		http:     &http.Client{},
		username: username,
		password: password,
	}
}

// newRequest はJSONボディ付きのリクエストを組み立てる
func (c *Client) newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	return req, nil
}

// Ping はエントリポイントの疎通を確認する
func (c *Client) Ping(ctx context.Context, endpoint string) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint+"/_api/version", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "ping " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return &InvalidResponseError{Status: resp.StatusCode, Body: readBody(resp)}
	}
	return nil
}

// DatabaseExists はデータベースの存在を確認する。
// トランスポート障害を含むあらゆる非成功応答はfalseに縮退する
func (c *Client) DatabaseExists(ctx context.Context, endpoint, name string) bool {
	url := fmt.Sprintf("%s/_db/%s/_api/database/current", endpoint, name)
	return c.probe(ctx, url)
}

// CollectionExists はコレクションの存在を確認する。
// DatabaseExistsと同じ縮退規則に従う
func (c *Client) CollectionExists(ctx context.Context, endpoint, database, name string) bool {
	url := fmt.Sprintf("%s/_db/%s/_api/collection/%s", endpoint, database, name)
	return c.probe(ctx, url)
}

// probe はGETが2xxを返すかどうかだけを判定する
func (c *Client) probe(ctx context.Context, url string) bool {
	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return isSuccess(resp.StatusCode)
}

// CreateDatabase はデータベースを作成する
func (c *Client) CreateDatabase(ctx context.Context, endpoint, name string) error {
	req, err := c.newRequest(ctx, http.MethodPost, endpoint+"/_api/database", map[string]any{
		"name": name,
	})
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "create database " + name, Err: err}
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body := readBody(resp)
	if resp.StatusCode == http.StatusConflict && strings.Contains(body, duplicateMarker) {
		return &AlreadyExistsError{Resource: "database", Name: name}
	}
	return &InvalidResponseError{Status: resp.StatusCode, Body: body}
}

// DropDatabase はデータベースを削除する
func (c *Client) DropDatabase(ctx context.Context, endpoint, name string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint+"/_api/database/"+name, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "drop database " + name, Err: err}
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body := readBody(resp)
	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: "database", Name: name}
	}
	return &InvalidResponseError{Status: resp.StatusCode, Body: body}
}

// CreateCollection はコレクションを作成する
func (c *Client) CreateCollection(ctx context.Context, endpoint, database, name string, shards, replicationFactor int) error {
	url := fmt.Sprintf("%s/_db/%s/_api/collection", endpoint, database)
	req, err := c.newRequest(ctx, http.MethodPost, url, map[string]any{
		"name":              name,
		"numberOfShards":    shards,
		"replicationFactor": replicationFactor,
	})
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "create collection " + name, Err: err}
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body := readBody(resp)
	if resp.StatusCode == http.StatusConflict && strings.Contains(body, duplicateMarker) {
		return &AlreadyExistsError{Resource: "collection", Name: name}
	}
	return &InvalidResponseError{Status: resp.StatusCode, Body: body}
}

// InsertBatch は1バッチ分のドキュメントを単一リクエストで投入する。
// バッチ単位での成否のみを報告する（部分的な成功は区別しない）
func (c *Client) InsertBatch(ctx context.Context, endpoint, database, collection string, docs []document.Document) error {
	url := fmt.Sprintf("%s/_db/%s/_api/document/%s", endpoint, database, collection)
	req, err := c.newRequest(ctx, http.MethodPost, url, docs)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "insert batch into " + collection, Err: err}
	}
	defer resp.Body.Close()

	if isSuccess(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return &InvalidResponseError{Status: resp.StatusCode, Body: readBody(resp)}
}

// isSuccess は2xxステータスかどうかを返す
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// readBody はレスポンス本文をエラー報告用に読み出す
func readBody(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(data)
}
