package controllers

import "go.uber.org/zap"

// Logger receives data-quality warnings raised while building reports.
// main replaces it at startup; the nop default keeps tests quiet.
var Logger = zap.NewNop()
