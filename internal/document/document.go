// Package document generates synthetic documents for insertion workloads.
package document

import (
	"fmt"
	"math/rand"
)

// Document は1件の合成ドキュメント（フィールド名→値）
type Document map[string]any

const (
	// keyPrefix は_keyの固定プレフィックス
	keyPrefix = "doc"

	// fixedOverhead は_key・数値・真偽値フィールドの
	// シリアライズサイズの近似値（バイト）
	fixedOverhead = 50

	// DefaultAttributes はフィラー文字列フィールドのデフォルト数
	DefaultAttributes = 5
)

// alphabet はフィラー文字列に使用する文字集合
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Key はシーケンス番号から決定的に_keyを導出する
func Key(index int) string {
	return fmt.Sprintf("%s%d", keyPrefix, index)
}

// Synthesize はシーケンス番号indexに対する合成ドキュメントを生成する。
// フィラー文字列の合計サイズはtargetSizeバイトに近づくよう調整されるが、
// シリアライズ後の実サイズは厳密には一致しない（ベストエフォート）。
func Synthesize(index, targetSize, attributeCount int) Document {
	doc := Document{
		"_key":  Key(index),
		"value": int64(rand.Uint64()),
		"flag":  rand.Intn(2) == 0,
	}

	if attributeCount <= 0 {
		return doc
	}

	attrLen := (targetSize - fixedOverhead) / attributeCount
	if attrLen < 0 {
		attrLen = 0
	}

	for i := 1; i <= attributeCount; i++ {
		doc[fmt.Sprintf("attr%d", i)] = randString(attrLen)
	}

	return doc
}

// randString はn文字のランダムな英数字文字列を生成する
func randString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
