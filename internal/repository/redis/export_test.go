package redis

var DecodeZoneChanged = decodeZoneChanged
