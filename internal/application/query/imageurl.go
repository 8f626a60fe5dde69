package query

import "fmt"

// coversBaseURL openlibrary封面服务地址（公共CDN，固定）
const coversBaseURL = "https://covers.openlibrary.org"

type imageSize string

const (
	sizeSmall  imageSize = "S"
	sizeMedium imageSize = "M"
	sizeLarge  imageSize = "L"
)

// authorImageURL 按作者OLID构造头像地址
func authorImageURL(authorKey string, size imageSize) string {
	if authorKey == "" {
		return ""
	}
	return fmt.Sprintf("%s/a/olid/%s-%s.jpg", coversBaseURL, authorKey, size)
}

// coverImageURL 按版本OLID构造封面地址，没有版本键时退回ISBN
func coverImageURL(t TitleHit, size imageSize) string {
	if len(t.EditionKeys) > 0 {
		return fmt.Sprintf("%s/b/olid/%s-%s.jpg", coversBaseURL, t.EditionKeys[0], size)
	}
	if len(t.Isbns) > 0 {
		return fmt.Sprintf("%s/b/isbn/%s-%s.jpg", coversBaseURL, t.Isbns[0], size)
	}
	return ""
}
