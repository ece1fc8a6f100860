// Package models — Profile ve ilgili request struct'ları.
//
// Profile, kullanıcı başına SIFIR veya BİR tane olur.
// Plan sıralaması (PlansOrder) frontend'in sürükle-bırak düzenini taşır —
// plan listesi DB'den tarihe göre gelir, görüntüleme sırası burada yaşar.
package models

import (
	"fmt"
	"time"
)

// Profile, kullanıcının planlayıcı profilini temsil eder.
// PlansOrder: plan id'lerinin görüntüleme sırası (en yeni başa eklenir).
// ProfilePicture: harici image hosting'deki görsel id'si — upload akışı
// bu servisin dışındadır, burada sadece saklanır.
type Profile struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ProfilePicture string    `json:"profile_picture"`
	PlansOrder     []string  `json:"plans_order"`
	Dark           bool      `json:"dark"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlansOrderRequest, plan sıralaması güncelleme isteği.
type PlansOrderRequest struct {
	PlansOrder []string `json:"plans_order"`
}

// Validate, PlansOrderRequest geçerlilik kontrolü.
// nil slice ile boş slice ayrımı önemli: body'de alan hiç yoksa nil gelir.
func (r *PlansOrderRequest) Validate() error {
	if r.PlansOrder == nil {
		return fmt.Errorf("plans_order is required")
	}
	return nil
}

// DarkModeRequest, koyu tema tercihi güncelleme isteği.
type DarkModeRequest struct {
	Dark *bool `json:"dark"`
}

// Validate, DarkModeRequest geçerlilik kontrolü.
// *bool kullanılır çünkü `false` da geçerli bir değerdir —
// pointer nil ise alan hiç gönderilmemiş demektir.
func (r *DarkModeRequest) Validate() error {
	if r.Dark == nil {
		return fmt.Errorf("dark is required")
	}
	return nil
}
