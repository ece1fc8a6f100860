package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT token'ın içindeki veriler (payload).
//
// JWT (JSON Web Token) nedir?
// Kullanıcı kimliğini doğrulamak için kullanılan, imzalanmış bir token.
// 3 parçadan oluşur: header.payload.signature
//
// Payload'da kullanıcı ID'si ve token'ın expire süresi bulunur.
// Server her request'te bu token'ı doğrular — DB'ye gitmeden
// kullanıcının kim olduğunu bilir. Server tarafında session kaydı YOKTUR:
// token imza + expiry ile kendi kendini tanımlar (stateless).
//
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, middleware) tarafından kullanılır — circular dependency önlenir.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
