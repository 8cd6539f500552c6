package handlers

import "github.com/oksasatya/writing-practice-api/pkg/response"

// Client-facing messages. Front-ends match on these strings.
const (
	MsgUsernameTaken  = "Tên đăng nhập đã tồn tại"
	MsgRegistered     = "Đăng ký thành công"
	MsgUserNotFound   = "Tên đăng nhập không tồn tại"
	MsgWrongPassword  = "Mật khẩu không đúng"
	MsgLoggedIn       = "Đăng nhập thành công"
	MsgSubmitted      = "Nộp đoạn văn thành công"
	MsgListed         = "Lấy đoạn văn thành công"
	MsgDeleted        = "Xoá đoạn văn thành công"
	MsgInvalidPayload = "Dữ liệu không hợp lệ"
	MsgServerError    = response.MsgServerError
)
