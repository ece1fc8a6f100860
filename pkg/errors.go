// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir (string taşıyan struct'lar).
// errors.New() ile sabit error değişkenleri tanımlarız.
// Böylece error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Bu, typo'ya açık string karşılaştırmasından çok daha güvenlidir.
package pkg

import "errors"

// Domain-level error'lar — kapalı (closed) bir taksonomidir.
// Service katmanı SADECE bu sentinel'ları döner, handler yakalar,
// pkg.Error tek noktada HTTP status code'una çevirir.
//
// Önemli ayrım: ErrInvalidCredential, "email yok" ve "şifre yanlış"
// durumlarının İKİSİNİ DE kapsar. Aynı error değeri dönmek kasıtlıdır —
// saldırgan response farkından hesap varlığını çıkaramaz (enumeration koruması).
var (
	ErrValidation        = errors.New("validation error")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("bad request")
	ErrInternal          = errors.New("internal error")
)
