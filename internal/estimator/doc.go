// Package estimator provides the trainable regressor behind the predictor.
//
// The contract is numeric shape only: Fit takes feature vectors and observed
// home-minus-away point differentials, Predict returns differential
// estimates. The concrete model is ridge regression; the original project
// configured a classifier against a continuous target, which this
// implementation deliberately corrects to a regressor.
package estimator
