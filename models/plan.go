// Package models — Plan (todo öğesi) ve ilgili request struct'ları.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Plan, kullanıcının planlayıcısındaki tek bir todo öğesini temsil eder.
// Author, plan sahibinin user id'sidir — her sorgu author'a göre süzülür,
// kimse başkasının planını göremez/değiştiremez.
type Plan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Complete  bool      `json:"complete"`
	Type      string    `json:"type"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanRequest, plan oluşturma ve güncelleme isteklerinin ortak gövdesi.
// Orijinal sözleşme: title ve type zorunlu, content/complete opsiyonel.
type PlanRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Complete bool   `json:"complete"`
	Type     string `json:"type"`
}

// Validate, PlanRequest geçerlilik kontrolü.
func (r *PlanRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Type = strings.TrimSpace(r.Type)
	if r.Title == "" || r.Type == "" {
		return fmt.Errorf("title and type can't be null")
	}
	return nil
}
