package classifier

var (
	WaveMean  = waveMean
	WaveStd   = waveStd
	LocalMean = localMean
	LocalStd  = localStd
)
