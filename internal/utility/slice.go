package utility

import "strconv"

// Contains kiểm tra một slice string có chứa giá trị cho trước không
func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// P2Int64 parse chuỗi thành int64, trả về 0 nếu không parse được
func P2Int64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
