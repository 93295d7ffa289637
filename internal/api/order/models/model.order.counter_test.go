// Package models - Test khóa bộ đếm và số hiển thị quay vòng 1..999.
package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCounterKey_PerBusinessPerDay(t *testing.T) {
	bizA := primitive.NewObjectID()
	bizB := primitive.NewObjectID()
	day := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	keyA := CounterKey(bizA, day)
	keyB := CounterKey(bizB, day)
	if keyA == keyB {
		t.Error("hai negocio phải có khóa bộ đếm khác nhau")
	}
	if keyA != bizA.Hex()+":orders-2026-03-15" {
		t.Errorf("khóa = %q, sai định dạng", keyA)
	}

	// Cùng negocio, ngày khác: khóa khác (bộ đếm reset theo ngày)
	nextDay := day.AddDate(0, 0, 1)
	if CounterKey(bizA, day) == CounterKey(bizA, nextDay) {
		t.Error("hai ngày khác nhau phải có khóa khác nhau")
	}

	// Giờ trong ngày không ảnh hưởng khóa
	sameDay := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	if CounterKey(bizA, day) != CounterKey(bizA, sameDay) {
		t.Error("cùng ngày lịch phải cùng khóa")
	}
}

func TestDisplayNumber_Rollover(t *testing.T) {
	cases := []struct {
		last int64
		want int
	}{
		{1, 1},
		{2, 2},
		{999, 999},
		{1000, 1}, // quay vòng: đơn thứ 1000 hiển thị lại #001
		{1001, 2},
		{1998, 999},
		{1999, 1},
	}
	for _, c := range cases {
		if got := DisplayNumber(c.last); got != c.want {
			t.Errorf("DisplayNumber(%d) = %d, muốn %d", c.last, got, c.want)
		}
	}
}
