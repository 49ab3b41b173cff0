package services

import "regexp"

// Nhận diện các dạng link YouTube: youtu.be/<id>, /v/<id>, /u/<n>/<id>,
// /embed/<id>, watch?v=<id>, &v=<id>; token cắt tại #, & hoặc ?
var youtubeIDPattern = regexp.MustCompile(`^.*(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*$`)

// ExtractVideoID lấy video id chuẩn 11 ký tự từ một link bất kỳ.
// Không bao giờ trả lỗi: input thiếu hoặc sai dạng chỉ cho ra chuỗi rỗng,
// tầng hiển thị coi đó là "không có media" chứ không phải lỗi.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	if len(match[1]) != 11 {
		return ""
	}
	return match[1]
}
