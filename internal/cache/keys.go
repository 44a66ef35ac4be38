package cache

import "strconv"

// CourseListKey holds the encoded course catalogue.
const CourseListKey = "courses"

// ModuleKey names the encoded payload of one module. Anything that changes a
// module row must delete it.
func ModuleKey(id uint) string { return "module:" + strconv.FormatUint(uint64(id), 10) }
