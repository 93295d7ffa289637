package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusForbidden       = 403 // Không có quyền thao tác
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusGone            = 410 // Tài nguyên không còn tồn tại
	StatusUnprocessable   = 422 // Dữ liệu hợp lệ về cú pháp nhưng không xử lý được
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	// Success Messages
	MsgSuccess  = "Thao tác thành công"
	MsgCreated  = "Tạo mới thành công"
	MsgAccepted = "Yêu cầu được chấp nhận"

	// Error Messages
	MsgBadRequest         = "Yêu cầu không hợp lệ"
	MsgNotFound           = "Không tìm thấy tài nguyên"
	MsgConflict           = "Xung đột dữ liệu"
	MsgTooManyRequests    = "Quá nhiều yêu cầu"
	MsgInternalError      = "Lỗi hệ thống"
	MsgServiceUnavailable = "Dịch vụ không khả dụng"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: BIZ_001)
	Category    string // Phân loại lỗi (ví dụ: Business)
	SubCategory string // Phân loại con (ví dụ: Catalog)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn dữ liệu",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	ErrCodeBusinessCatalog = ErrorCode{
		Code:        "BIZ_003",
		Category:    "Business",
		SubCategory: "Catalog",
		Description: "Lỗi liên quan đến catalog công khai",
	}

	ErrCodeBusinessCart = ErrorCode{
		Code:        "BIZ_004",
		Category:    "Business",
		SubCategory: "Cart",
		Description: "Lỗi liên quan đến giỏ hàng",
	}

	ErrCodeBusinessCheckout = ErrorCode{
		Code:        "BIZ_005",
		Category:    "Business",
		SubCategory: "Checkout",
		Description: "Lỗi liên quan đến quy trình checkout",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Lỗi giao dịch cơ sở dữ liệu", StatusInternalServerError, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Thao tác không hợp lệ", StatusBadRequest, nil)

	// Catalog Errors
	ErrCatalogUnavailable  = NewError(ErrCodeBusinessCatalog, "Catálogo no disponible", StatusNotFound, nil)
	ErrProductNotOrderable = NewError(ErrCodeBusinessCatalog, "Producto agotado", StatusConflict, nil)
	ErrPriceLevelDisabled  = NewError(ErrCodeBusinessCatalog, "Nivel de precio no habilitado", StatusBadRequest, nil)

	// Cart Errors
	ErrCartNotFound     = NewError(ErrCodeBusinessCart, "Carrito no encontrado", StatusNotFound, nil)
	ErrCartEmpty        = NewError(ErrCodeBusinessCart, "El carrito está vacío", StatusBadRequest, nil)
	ErrCartLineNotFound = NewError(ErrCodeBusinessCart, "Línea de carrito no encontrada", StatusNotFound, nil)
	ErrModifierLimit    = NewError(ErrCodeBusinessCart, "Se alcanzó el máximo de opciones para este modificador", StatusConflict, nil)
	ErrModifierRequired = NewError(ErrCodeBusinessCart, "Faltan modificadores obligatorios", StatusBadRequest, nil)
	ErrVariantRequired  = NewError(ErrCodeBusinessCart, "Selecciona una presentación del producto", StatusBadRequest, nil)

	// Checkout Errors
	ErrWhatsappNotConfigured = NewError(ErrCodeBusinessCheckout, "El negocio no tiene WhatsApp configurado", StatusUnprocessable, nil)
	ErrCustomerNameRequired  = NewError(ErrCodeBusinessCheckout, "El nombre del cliente es obligatorio", StatusBadRequest, nil)
	ErrCustomerPhoneRequired = NewError(ErrCodeBusinessCheckout, "El teléfono del cliente es obligatorio", StatusBadRequest, nil)
	ErrTableRequired         = NewError(ErrCodeBusinessCheckout, "El número de mesa es obligatorio", StatusBadRequest, nil)
	ErrOrderWriteDenied      = NewError(ErrCodeBusinessCheckout, "No se pudo registrar el pedido. Contacta al negocio.", StatusForbidden, nil)
	ErrCheckoutInProgress    = NewError(ErrCodeBusinessCheckout, "Ya hay un pedido en proceso", StatusConflict, nil)
)

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert ErrNotFound - giữ nguyên để tầng trên phân biệt được
	if errors.Is(err, ErrNotFound) {
		return err
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		// Code 13 = Unauthorized: tầng checkout cần phân biệt để đưa
		// thông điệp "liên hệ negocio" thay vì lỗi kỹ thuật
		case mongoErr.Code == 13:
			return NewError(ErrCodeDatabase, "Không có quyền ghi dữ liệu", StatusForbidden, err)
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return NewError(ErrCodeDatabaseConnection, "Lỗi kết nối MongoDB", StatusServiceUnavailable, err)
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn MongoDB", StatusInternalServerError, err)
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return NewError(ErrCodeDatabaseQuery, "Lỗi ghi dữ liệu MongoDB", StatusInternalServerError, err)
		case mongoErr.Code >= 500:
			return NewError(ErrCodeDatabase, "Lỗi hệ thống MongoDB", StatusInternalServerError, err)
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, "Lỗi mạng khi kết nối MongoDB", StatusServiceUnavailable, err)
	}
	if mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Kết nối MongoDB bị timeout", StatusServiceUnavailable, err)
	}

	// Nếu không tìm thấy lỗi cụ thể, trả về lỗi hệ thống chung
	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
