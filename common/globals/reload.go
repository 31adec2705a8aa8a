package globals

var WebReloadChan = make(chan bool)
var MetricsReloadChan = make(chan bool)
var DatabaseReloadChan = make(chan bool)
var DatastoreReloadChan = make(chan bool)
var CacheReloadChan = make(chan bool)
var QueueResizeChan = make(chan bool)
