package app

var KeepSweeping = keepSweeping
