// Package ordersvc - Test validation theo loại đơn và máy trạng thái checkout.
package ordersvc

import (
	"errors"
	"testing"

	orderdto "catalogo_commerce/internal/api/order/dto"
	ordermodels "catalogo_commerce/internal/api/order/models"
	"catalogo_commerce/internal/common"
)

func TestValidate_DineIn(t *testing.T) {
	input := &orderdto.CheckoutInput{Mode: "order", OrderType: ordermodels.OrderTypeDineIn}

	if err := validate(input, "", false); !errors.Is(err, common.ErrTableRequired) {
		t.Errorf("dine_in không bàn: err = %v, muốn ErrTableRequired", err)
	}
	// Chỉ toàn khoảng trắng cũng coi như thiếu
	if err := validate(input, "   ", false); !errors.Is(err, common.ErrTableRequired) {
		t.Errorf("dine_in bàn trắng: err = %v, muốn ErrTableRequired", err)
	}
	if err := validate(input, "5", false); err != nil {
		t.Errorf("dine_in có bàn: err = %v, muốn nil", err)
	}
}

func TestValidate_RequireCustomerName(t *testing.T) {
	// Negocio bật requireCustomerName: dine_in cũng phải có tên khách
	input := &orderdto.CheckoutInput{Mode: "order", OrderType: ordermodels.OrderTypeDineIn}

	if err := validate(input, "5", true); !errors.Is(err, common.ErrCustomerNameRequired) {
		t.Errorf("dine_in không tên khi negocio bắt buộc: err = %v, muốn ErrCustomerNameRequired", err)
	}

	input.CustomerName = "Ana"
	if err := validate(input, "5", true); err != nil {
		t.Errorf("dine_in có tên khi negocio bắt buộc: err = %v, muốn nil", err)
	}
}

func TestValidate_Takeaway(t *testing.T) {
	input := &orderdto.CheckoutInput{Mode: "order", OrderType: ordermodels.OrderTypeTakeaway}

	if err := validate(input, "", false); !errors.Is(err, common.ErrCustomerNameRequired) {
		t.Errorf("takeaway không tên: err = %v, muốn ErrCustomerNameRequired", err)
	}

	input.CustomerName = "Ana"
	if err := validate(input, "", false); err != nil {
		t.Errorf("takeaway có tên: err = %v, muốn nil (không cần bàn, không cần điện thoại)", err)
	}
}

func TestValidate_Delivery(t *testing.T) {
	input := &orderdto.CheckoutInput{Mode: "order", OrderType: ordermodels.OrderTypeDelivery, CustomerName: "Ana"}

	if err := validate(input, "", false); !errors.Is(err, common.ErrCustomerPhoneRequired) {
		t.Errorf("delivery không điện thoại: err = %v, muốn ErrCustomerPhoneRequired", err)
	}
	// Điện thoại không có chữ số nào cũng coi như thiếu
	input.CustomerPhone = "---"
	if err := validate(input, "", false); !errors.Is(err, common.ErrCustomerPhoneRequired) {
		t.Errorf("delivery điện thoại không chữ số: err = %v, muốn ErrCustomerPhoneRequired", err)
	}

	input.CustomerPhone = "+51 987 654 321"
	if err := validate(input, "", false); err != nil {
		t.Errorf("delivery đủ thông tin: err = %v, muốn nil", err)
	}
}

func TestValidate_UnknownOrderType(t *testing.T) {
	input := &orderdto.CheckoutInput{Mode: "order", OrderType: "drive_thru"}
	if err := validate(input, "5", false); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("loại đơn lạ: err = %v, muốn ErrInvalidInput", err)
	}
}

func TestCheckoutSession_RejectsConcurrent(t *testing.T) {
	session := &checkoutSession{state: CheckoutStateIdle}

	if err := session.begin(); err != nil {
		t.Fatalf("begin từ idle: err = %v, muốn nil", err)
	}
	// Checkout thứ hai của cùng giỏ khi đang validating: từ chối
	if err := session.begin(); !errors.Is(err, common.ErrCheckoutInProgress) {
		t.Errorf("begin khi đang chạy: err = %v, muốn ErrCheckoutInProgress", err)
	}

	session.transition(CheckoutStateSubmitting)
	if err := session.begin(); !errors.Is(err, common.ErrCheckoutInProgress) {
		t.Errorf("begin khi submitting: err = %v, muốn ErrCheckoutInProgress", err)
	}
}

func TestCheckoutSession_RetryAfterTerminal(t *testing.T) {
	session := &checkoutSession{state: CheckoutStateError}
	if err := session.begin(); err != nil {
		t.Errorf("retry sau lỗi phải được phép: err = %v", err)
	}

	session = &checkoutSession{state: CheckoutStateSuccess}
	if err := session.begin(); err != nil {
		t.Errorf("checkout mới sau thành công phải được phép: err = %v", err)
	}
}

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		display int
		want    string
	}{
		{1, "#001"},
		{42, "#042"},
		{999, "#999"},
	}
	for _, c := range cases {
		if got := FormatOrderNumber(c.display); got != c.want {
			t.Errorf("FormatOrderNumber(%d) = %q, muốn %q", c.display, got, c.want)
		}
	}
}
