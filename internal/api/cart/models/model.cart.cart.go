// Package models định nghĩa giỏ hàng của phiên mua sắm và danh tính dòng.
// Mỗi phiên trình duyệt có một giỏ riêng, không chia sẻ giữa các phiên.
package models

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineIdentity là danh tính ghép của một dòng giỏ hàng: hai lựa chọn chỉ
// gộp vào cùng một dòng khi trùng cả bốn thành phần. Kiểu value so sánh
// được trực tiếp, không dựa vào nối chuỗi nên ID chứa ký tự phân cách
// cũng không gây va chạm.
type LineIdentity struct {
	ProductID         string `json:"productId" bson:"productId"`                 // Hex ObjectID của sản phẩm
	VariantSKU        string `json:"variantSku" bson:"variantSku"`               // SKU biến thể, rỗng nếu không có
	ModifierSignature string `json:"modifierSignature" bson:"modifierSignature"` // Chữ ký chuẩn hóa của các tùy chọn
	PriceLevel        int    `json:"priceLevel" bson:"priceLevel"`               // Mức giá đã chốt (1..4)
}

// String render danh tính thành chuỗi ổn định, dùng làm lineId trong API
func (id LineIdentity) String() string {
	return strings.Join([]string{id.ProductID, id.VariantSKU, strconv.Itoa(id.PriceLevel), id.ModifierSignature}, "|")
}

// BuildModifierSignature chuẩn hóa lựa chọn modificador thành chữ ký không
// phụ thuộc thứ tự: nhóm sắp theo ID, tùy chọn trong nhóm sắp theo ID,
// nên chọn "B rồi A" cho cùng chữ ký với "A rồi B". Nhóm không có lựa
// chọn nào bị bỏ qua.
func BuildModifierSignature(selections map[string][]string) string {
	if len(selections) == 0 {
		return ""
	}

	groupIDs := make([]string, 0, len(selections))
	for groupID, optionIDs := range selections {
		if len(optionIDs) == 0 {
			continue
		}
		groupIDs = append(groupIDs, groupID)
	}
	sort.Strings(groupIDs)

	parts := make([]string, 0, len(groupIDs))
	for _, groupID := range groupIDs {
		optionIDs := append([]string(nil), selections[groupID]...)
		sort.Strings(optionIDs)
		parts = append(parts, groupID+":"+strings.Join(optionIDs, ","))
	}
	return strings.Join(parts, ";")
}

// ModifierLine là một dòng modificador đã chọn, giữ snapshot tên và phụ thu
// để hiển thị và dựng tin nhắn mà không cần đọc lại sản phẩm
type ModifierLine struct {
	GroupID    string  `json:"groupId" bson:"groupId"`       // ID nhóm
	GroupName  string  `json:"groupName" bson:"groupName"`   // Tên nhóm tại thời điểm thêm
	OptionID   string  `json:"optionId" bson:"optionId"`     // ID tùy chọn
	OptionName string  `json:"optionName" bson:"optionName"` // Tên tùy chọn tại thời điểm thêm
	PriceDelta float64 `json:"priceDelta" bson:"priceDelta"` // Phụ thu tại thời điểm thêm
}

// CartItem là một dòng trong giỏ. Giá đơn vị được ĐÓNG BĂNG tại thời điểm
// thêm: catálogo đổi giá giữa phiên không ảnh hưởng các đơn vị đã trong giỏ.
type CartItem struct {
	Identity        LineIdentity        `json:"identity" bson:"identity"`               // Danh tính ghép của dòng
	LineID          string              `json:"lineId" bson:"lineId"`                   // Render chuỗi của Identity (tra cứu qua API)
	ProductID       primitive.ObjectID  `json:"productId" bson:"productId"`             // Sản phẩm gốc
	ProductName     string              `json:"productName" bson:"productName"`         // Snapshot tên sản phẩm
	ImageURL        string              `json:"imageUrl" bson:"imageUrl"`               // Snapshot ảnh
	VariantSKU      string              `json:"variantSku" bson:"variantSku"`           // Biến thể đã chọn, rỗng nếu không có
	VariantName     string              `json:"variantName" bson:"variantName"`         // Snapshot tên biến thể
	PriceLevel      int                 `json:"priceLevel" bson:"priceLevel"`           // Mức giá đã chốt
	PriceLevelLabel string              `json:"priceLevelLabel" bson:"priceLevelLabel"` // Nhãn mức giá (rỗng = mặc định)
	UnitPriceCents  int64               `json:"unitPriceCents" bson:"unitPriceCents"`   // Giá đơn vị đóng băng, céntimos
	Quantity        int                 `json:"quantity" bson:"quantity"`               // Số lượng, luôn dương
	Selections      map[string][]string `json:"selections" bson:"selections"`           // Lựa chọn chuẩn hóa theo nhóm
	Modifiers       []ModifierLine      `json:"modifiers" bson:"modifiers"`             // Snapshot các dòng modificador
	IGVAffected     bool                `json:"igvAffected" bson:"igvAffected"`         // Dòng có chịu IGV không
}

// TotalCents là thành tiền của dòng
func (it *CartItem) TotalCents() int64 {
	return it.UnitPriceCents * int64(it.Quantity)
}

// Cart là giỏ hàng của một phiên mua sắm. Items giữ nguyên thứ tự thêm vào.
// Mutex bảo vệ giỏ khi nhiều request của cùng phiên đến đồng thời.
type Cart struct {
	Mu         sync.Mutex         `json:"-" bson:"-"`
	ID         string             `json:"id" bson:"_id"`                               // UUID của phiên giỏ hàng
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`                // Negocio của catálogo
	Slug       string             `json:"slug" bson:"slug"`                            // Slug catálogo mà giỏ thuộc về
	TableLabel string             `json:"tableLabel" bson:"tableLabel"`                // Số bàn lấy từ query (?mesa= / ?table=)
	Items      []CartItem         `json:"items" bson:"items"`                          // Các dòng, theo thứ tự thêm vào
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`                  // Thời gian tạo (UnixMilli)
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt" index:"single:1"` // Lần chạm cuối (UnixMilli), dùng cho dọn giỏ hết hạn
}

// findIndex trả về vị trí dòng có danh tính cho trước, -1 nếu không có
func (c *Cart) findIndex(identity LineIdentity) int {
	for i := range c.Items {
		if c.Items[i].Identity == identity {
			return i
		}
	}
	return -1
}

// FindItem trả về dòng theo danh tính, nil nếu không có
func (c *Cart) FindItem(identity LineIdentity) *CartItem {
	if i := c.findIndex(identity); i >= 0 {
		return &c.Items[i]
	}
	return nil
}

// FindItemByLineID trả về dòng theo render chuỗi của danh tính
func (c *Cart) FindItemByLineID(lineID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].LineID == lineID {
			return &c.Items[i]
		}
	}
	return nil
}

// Merge gộp một dòng mới vào giỏ. Nếu đã có dòng cùng danh tính thì chỉ
// cộng số lượng — giá, snapshot và nhãn GIỮ NGUYÊN theo lần ghi đầu tiên.
// Nếu chưa có thì nối vào cuối, giữ thứ tự thêm vào.
func (c *Cart) Merge(item CartItem) {
	if i := c.findIndex(item.Identity); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		return
	}
	c.Items = append(c.Items, item)
}

// SetQuantity đặt số lượng trực tiếp (không gộp); <= 0 nghĩa là xóa dòng.
// Trả về false nếu không có dòng nào mang danh tính đó.
func (c *Cart) SetQuantity(identity LineIdentity, quantity int) bool {
	i := c.findIndex(identity)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	c.Items[i].Quantity = quantity
	return true
}

// Remove xóa dòng theo danh tính; danh tính không tồn tại là no-op
func (c *Cart) Remove(identity LineIdentity) {
	if i := c.findIndex(identity); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// QuantityForProduct cộng số lượng của mọi dòng cùng một sản phẩm
// (badge "N en el carrito" trên lưới catálogo)
func (c *Cart) QuantityForProduct(productID primitive.ObjectID) int {
	total := 0
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			total += c.Items[i].Quantity
		}
	}
	return total
}

// TotalCents là tổng tiền của giỏ: Σ(giá đơn vị × số lượng)
func (c *Cart) TotalCents() int64 {
	var total int64
	for i := range c.Items {
		total += c.Items[i].TotalCents()
	}
	return total
}

// TotalQuantity là tổng số đơn vị trong giỏ
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// IsEmpty cho biết giỏ có trống không
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear xóa mọi dòng (giỏ nhường quyền sở hữu cho đơn sau checkout)
func (c *Cart) Clear() {
	c.Items = nil
}
