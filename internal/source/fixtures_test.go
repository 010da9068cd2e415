// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

const atomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title type="html">ArXiv Query: search_query=all:attention</title>
  <id>http://arxiv.org/api/q1</id>
  <updated>2024-01-02T00:00:00-05:00</updated>
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <updated>2023-08-02T00:41:18Z</updated>
    <published>2017-06-12T17:57:34Z</published>
    <title>Attention Is All
  You Need</title>
    <summary>  The dominant sequence transduction models are based on complex recurrent
or convolutional neural networks.</summary>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <link href="http://arxiv.org/abs/1706.03762v7" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v7" rel="related" type="application/pdf"/>
    <arxiv:primary_category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1512.03385v1</id>
    <published>2015-12-10T19:51:55Z</published>
    <title>Deep Residual Learning for Image Recognition</title>
    <summary>Deeper neural networks are more difficult to train.</summary>
    <author><name>Kaiming He</name></author>
    <link href="http://arxiv.org/abs/1512.03385v1" rel="alternate" type="text/html"/>
    <category term="cs.CV" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/1901.00596v4</id>
    <published>2019-01-03T03:20:55Z</published>
    <title>Graph Neural Networks: A Review</title>
    <summary>Graph neural networks operate on graph structured data.</summary>
    <author><name>Zonghan Wu</name></author>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="stat.ML" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2001.00001v1</id>
    <published>2020-01-01T00:00:00Z</published>
    <title>   </title>
    <summary>An entry with no title.</summary>
  </entry>
</feed>`

const atomErrorFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title type="html">ArXiv Query: search_query=&amp;id_list=1234</title>
  <id>http://arxiv.org/api/err</id>
  <updated>2024-01-02T00:00:00-05:00</updated>
  <entry>
    <id>http://arxiv.org/api/errors#incorrect_id_format_for_1234</id>
    <title>Error</title>
    <summary>incorrect id format for 1234</summary>
    <updated>2024-01-02T00:00:00-05:00</updated>
    <link href="http://arxiv.org/api/errors#incorrect_id_format_for_1234" rel="alternate" type="text/html"/>
    <author><name>arXiv api core</name></author>
  </entry>
</feed>`

const listingPage = `<!DOCTYPE html>
<html><head><title>Computer Science authors/titles "new"</title></head>
<body><div id="dlpage">
<h1>Computer Science</h1>
<dl id="articles">
<h3>New submissions (showing 3 of 3 entries)</h3>
<dt><a name="item1">[1]</a>
  <a href="/abs/2401.00001" title="Abstract" id="2401.00001">arXiv:2401.00001</a>
  [<a href="/pdf/2401.00001" title="Download PDF">pdf</a>]
</dt>
<dd>
  <div class="meta">
    <div class="list-title mathjax"><span class="descriptor">Title:</span>
      Vision Transformers
      for Dense Prediction
    </div>
    <div class="list-authors"><span class="descriptor">Authors:</span>
      <a href="/a/smith_a_1">Alice Smith</a>,
      <a href="/a/jones_b_1">Bob Jones</a>
    </div>
    <div class="list-subjects"><span class="descriptor">Subjects:</span>
      <span class="primary-subject">Computer Vision and Pattern Recognition (cs.CV)</span>; Machine Learning (cs.LG)
    </div>
    <p class="mathjax">We apply AI transformers to dense prediction.
    </p>
  </div>
</dd>
<dt><a name="item2">[2]</a>
  <a href="/abs/2401.00002" title="Abstract" id="2401.00002">arXiv:2401.00002</a>
</dt>
<dd>
  <div class="meta">
    <div class="list-authors"><span class="descriptor">Authors:</span> Nobody</div>
    <div class="list-subjects"><span class="descriptor">Subjects:</span> Robotics (cs.RO)</div>
  </div>
</dd>
<dt><a name="item3">[3]</a>
  <a href="/abs/2401.00003" title="Abstract" id="2401.00003">arXiv:2401.00003</a>
</dt>
<dd>
  <div class="meta">
    <div class="list-title mathjax"><span class="descriptor">Title:</span> Retrieval Augmented Generation</div>
    <div class="list-authors"><span class="descriptor">Authors:</span> Carol White and Dan Brown</div>
    <div class="list-subjects"><span class="descriptor">Subjects:</span> Computation and Language (cs.CL)</div>
  </div>
</dd>
</dl>
<dl id="articles">
<h3>Cross submissions (showing 1 of 1 entries)</h3>
<dt><a href="/abs/2401.00099" title="Abstract">arXiv:2401.00099</a> (cross-list from stat.ML)</dt>
<dd>
  <div class="meta">
    <div class="list-title mathjax"><span class="descriptor">Title:</span> Maintaining Kernels</div>
    <div class="list-authors"><a href="/a/x">Eve Stone</a></div>
    <div class="list-subjects"><span class="descriptor">Subjects:</span> Machine Learning (stat.ML); Machine Learning (cs.LG)</div>
    <p class="mathjax">Kernel maintenance.</p>
  </div>
</dd>
</dl>
<dl id="articles">
<h3>Replacement submissions (showing 1 of 1 entries)</h3>
<dt><a href="/abs/2301.99999" title="Abstract">arXiv:2301.99999</a></dt>
<dd>
  <div class="meta">
    <div class="list-title mathjax"><span class="descriptor">Title:</span> An Old Paper</div>
  </div>
</dd>
</dl>
</div></body></html>`

const digestA = `Subject: cs daily Subj-class mailing 1 2
Send any comments regarding submissions directly to submitter.
------------------------------------------------------------------------------
\\
arXiv:2401.10001
Date: Mon, 1 Jan 2024 10:00:00 GMT   (1234kb)

Title: Scaling Laws for
  Neural Language Models
Authors: Jared Kaplan, Sam McCandlish and Tom Henighan
Categories: cs.LG cs.CL
Comments: 19 pages
\\
  We study empirical scaling laws for language model performance on the
cross-entropy loss.
\\ ( https://arxiv.org/abs/2401.10001 ,  1234kb)
------------------------------------------------------------------------------
\\
arXiv:2401.10002
Date: Tue, 2 Jan 2024 09:30:00 GMT   (88kb,D)

Title: A Truncated Entry About Diffusion
Authors: Ann Lee
Categories: cs.CV
\\
  This abstract was cut off by the exporter mid`

const digestB = `------------------------------------------------------------------------------
\\
arXiv:2401.20001
Date: Wed, 3 Jan 2024 11:00:00 GMT   (500kb)

Title: Graph Attention Networks Revisited
Authors: Petar Velickovic
Categories: cs.LG stat.ML
\\
  We revisit graph attention.
\\ ( https://arxiv.org/abs/2401.20001 ,  500kb)
------------------------------------------------------------------------------
\\
arXiv:2401.20002
Date: Wed, 3 Jan 2024 12:00:00 GMT   (10kb)

Title: Entry Without Abstract
Authors: Solo Author
Categories: cs.AI
------------------------------------------------------------------------------
\\
Date: Wed, 3 Jan 2024 12:00:00 GMT   (10kb)

Title: Entry Without Identifier
Authors: Lost Author
Categories: cs.AI
\\
  Nobody can cite this.
\\ ( https://arxiv.org/abs/unknown ,  1kb)
------------------------------------------------------------------------------
%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%--%%
------------------------------------------------------------------------------
\\
arXiv:2301.00500
replaced with revised version Wed, 3 Jan 2024 12:00:00 GMT   (10kb)

Title: A Replaced Paper
Authors: Old Author
Categories: cs.AI
\\ ( https://arxiv.org/abs/2301.00500 ,  10kb)
------------------------------------------------------------------------------
`
