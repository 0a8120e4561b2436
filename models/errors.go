package models

import "errors"

// Lỗi nghiệp vụ dùng chung cho services và controllers. Service trả nguyên
// các sentinel này, controller tự quy ra mã HTTP: không retry trong core.
var (
	ErrNotFound          = errors.New("không tìm thấy bản ghi")
	ErrConflict          = errors.New("dữ liệu bị trùng")
	ErrAlreadySubmitted  = errors.New("đã gửi phản hồi cho phiếu này")
	ErrForbidden         = errors.New("không thuộc đối tượng của phiếu này")
	ErrFormUnavailable   = errors.New("phiếu không tồn tại hoặc đã ngừng nhận")
	ErrProfileIncomplete = errors.New("hồ sơ sinh viên chưa được admin gán đủ năm học, ngành, lớp")
	ErrInvalidInput      = errors.New("dữ liệu không hợp lệ")
)
